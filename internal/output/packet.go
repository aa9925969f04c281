package output

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/example/icled/internal/icled"
)

// Wire framing for the serial link to a downstream LED controller: one type
// byte, a little-endian payload, and a CRC32-IEEE checksum truncated to a
// single byte.
type packetType uint8

const (
	packetInit packetType = iota
	packetClear
	packetSet
)

func (t packetType) String() string {
	switch t {
	case packetInit:
		return "init"
	case packetClear:
		return "clear"
	case packetSet:
		return "set"
	default:
		return fmt.Sprintf("packetType(%d)", uint8(t))
	}
}

func payloadSize(t packetType) (int, error) {
	switch t {
	case packetInit:
		return 2, nil
	case packetClear:
		return 0, nil
	case packetSet:
		return 3 * icled.LEDCount, nil
	default:
		return 0, fmt.Errorf("unknown packet type %d", uint8(t))
	}
}

func writePacket(w io.Writer, t packetType, payload []byte) error {
	hash := crc32.NewIEEE()
	mw := io.MultiWriter(w, hash)
	if _, err := mw.Write([]byte{byte(t)}); err != nil {
		return fmt.Errorf("write %s packet type: %w", t, err)
	}
	if len(payload) > 0 {
		if _, err := mw.Write(payload); err != nil {
			return fmt.Errorf("write %s packet payload: %w", t, err)
		}
	}
	if _, err := w.Write([]byte{uint8(hash.Sum32())}); err != nil {
		return fmt.Errorf("write %s packet checksum: %w", t, err)
	}
	return nil
}

func writeInitPacket(w io.Writer, numLEDs uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], numLEDs)
	return writePacket(w, packetInit, buf[:])
}

func writeClearPacket(w io.Writer) error {
	return writePacket(w, packetClear, nil)
}

func writeSetPacket(w io.Writer, pix []byte) error {
	return writePacket(w, packetSet, pix)
}

// readPacket parses one framed packet and verifies its checksum. The
// controller firmware implements the same parse; the host side keeps it for
// tests and link debugging.
func readPacket(r io.Reader) (packetType, []byte, error) {
	hash := crc32.NewIEEE()
	tr := io.TeeReader(r, hash)

	var head [1]byte
	if _, err := io.ReadFull(tr, head[:]); err != nil {
		return 0, nil, fmt.Errorf("read packet type: %w", err)
	}
	t := packetType(head[0])
	size, err := payloadSize(t)
	if err != nil {
		return 0, nil, err
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(tr, payload); err != nil {
		return 0, nil, fmt.Errorf("read %s packet payload: %w", t, err)
	}

	want := uint8(hash.Sum32())
	var sum [1]byte
	if _, err := io.ReadFull(r, sum[:]); err != nil {
		return 0, nil, fmt.Errorf("read %s packet checksum: %w", t, err)
	}
	if sum[0] != want {
		return 0, nil, fmt.Errorf("%s packet checksum mismatch", t)
	}
	return t, payload, nil
}
