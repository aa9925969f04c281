package output

import (
	"github.com/pkg/errors"
	"go.bug.st/serial"

	"github.com/example/icled/internal/icled"
)

// Serial streams frames to an external LED controller over a serial line.
// The controller owns the waveform generation on its end; this transfer only
// carries pixel data, so Stop is a no-op.
type Serial struct {
	port      serial.Port
	zero, one uint16
}

// NewSerial opens device at the given baud rate and announces the matrix size
// with an init packet.
func NewSerial(device string, baud int, zero, one uint16) (*Serial, error) {
	port, err := serial.Open(device, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, errors.Wrap(err, "open serial port")
	}
	s := &Serial{port: port, zero: zero, one: one}
	if err := writeInitPacket(port, icled.LEDCount); err != nil {
		port.Close()
		return nil, errors.Wrap(err, "initialize controller")
	}
	return s, nil
}

func (s *Serial) Start(codes []uint16) error {
	f, err := icled.Decode(codes, s.zero, s.one)
	if err != nil {
		return errors.Wrap(err, "serial transfer")
	}
	return errors.Wrap(writeSetPacket(s.port, f.AppendRGB(nil)), "serial write")
}

func (s *Serial) Stop() error { return nil }

// Close blanks the strip and releases the port.
func (s *Serial) Close() error {
	werr := writeClearPacket(s.port)
	cerr := s.port.Close()
	if werr != nil {
		return errors.Wrap(werr, "clear on close")
	}
	return cerr
}
