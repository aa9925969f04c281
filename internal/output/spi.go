package output

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"

	"github.com/example/icled/internal/icled"
)

// SPI pushes frames through an NRZ-over-SPI serializer, the usual way to feed
// WS2812-class LEDs from a host with a spidev port. The SPI stream is written
// once per Start rather than cycled by hardware, so Stop only satisfies the
// Transfer contract.
type SPI struct {
	dev       *nrzled.Dev
	port      spi.PortCloser
	zero, one uint16
}

// NewSPI opens the named SPI port ("" picks the first available) and prepares
// the serializer for the full matrix at the given bit frequency.
func NewSPI(name string, freq physic.Frequency, zero, one uint16) (*SPI, error) {
	port, err := spireg.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open spi port")
	}
	s, err := NewSPIFromPort(port, freq, zero, one)
	if err != nil {
		port.Close()
		return nil, err
	}
	s.port = port
	return s, nil
}

// NewSPIFromPort is NewSPI over an already-open port, which stays owned by
// the caller.
func NewSPIFromPort(p spi.Port, freq physic.Frequency, zero, one uint16) (*SPI, error) {
	dev, err := nrzled.NewSPI(p, &nrzled.Opts{
		NumPixels: icled.LEDCount,
		Channels:  3,
		Freq:      freq,
	})
	if err != nil {
		return nil, errors.Wrap(err, "nrzled")
	}
	return &SPI{dev: dev, zero: zero, one: one}, nil
}

func (s *SPI) Start(codes []uint16) error {
	f, err := icled.Decode(codes, s.zero, s.one)
	if err != nil {
		return errors.Wrap(err, "spi transfer")
	}
	if _, err := s.dev.Write(f.AppendRGB(nil)); err != nil {
		return errors.Wrap(err, "spi write")
	}
	return nil
}

func (s *SPI) Stop() error { return nil }

// Close halts the serializer (blanking the strip) and releases the port when
// this SPI opened it.
func (s *SPI) Close() error {
	err := s.dev.Halt()
	if s.port != nil {
		if cerr := s.port.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
