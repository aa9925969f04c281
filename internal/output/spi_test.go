package output

import (
	"bytes"
	"testing"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spitest"

	"github.com/example/icled/internal/icled"
)

func TestSPITransferWritesFrame(t *testing.T) {
	zero, one := icled.DutyCodes(icled.DefaultPeriod)

	var rec bytes.Buffer
	s, err := NewSPIFromPort(spitest.NewRecordRaw(&rec), 2500*physic.KiloHertz, zero, one)
	if err != nil {
		t.Fatalf("new spi: %v", err)
	}

	var f icled.Frame
	f.Set(0, 0xFF, 0x00, 0x00)
	buf := make([]uint16, icled.BufferSize)
	icled.Encode(&f, buf, zero, one)

	if err := s.Start(buf); err != nil {
		t.Fatalf("start: %v", err)
	}
	if rec.Len() == 0 {
		t.Fatal("expected NRZ bytes on the wire")
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestSPITransferRejectsCorruptBuffer(t *testing.T) {
	zero, one := icled.DutyCodes(icled.DefaultPeriod)

	var rec bytes.Buffer
	s, err := NewSPIFromPort(spitest.NewRecordRaw(&rec), 2500*physic.KiloHertz, zero, one)
	if err != nil {
		t.Fatalf("new spi: %v", err)
	}

	var f icled.Frame
	bad := make([]uint16, icled.BufferSize)
	icled.Encode(&f, bad, zero, one)
	bad[0] = one + 1
	if err := s.Start(bad); err == nil {
		t.Fatal("expected decode error")
	}
}
