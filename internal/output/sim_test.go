package output

import (
	"testing"

	"github.com/example/icled/internal/icled"
)

func TestSimRecordsSequencing(t *testing.T) {
	zero, one := icled.DutyCodes(icled.DefaultPeriod)
	s := NewSim(zero, one)

	if s.Running() {
		t.Fatal("fresh sim must not be running")
	}
	if _, err := s.RGB(); err == nil {
		t.Fatal("expected error before any transfer")
	}

	var f icled.Frame
	f.Set(0, 10, 20, 30)
	buf := make([]uint16, icled.BufferSize)
	icled.Encode(&f, buf, zero, one)

	if err := s.Start(buf); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !s.Running() {
		t.Fatal("sim must be running after start")
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if s.Running() {
		t.Fatal("sim must be stopped after stop")
	}

	ops := s.Ops()
	if len(ops) != 2 || ops[0] != "start" || ops[1] != "stop" {
		t.Fatalf("unexpected op sequence: %v", ops)
	}
}

func TestSimDecodesLastFrame(t *testing.T) {
	zero, one := icled.DutyCodes(icled.DefaultPeriod)
	s := NewSim(zero, one)

	var f icled.Frame
	f.Set(2, 111, 222, 33)
	buf := make([]uint16, icled.BufferSize)
	icled.Encode(&f, buf, zero, one)
	if err := s.Start(buf); err != nil {
		t.Fatalf("start: %v", err)
	}

	rgb, err := s.RGB()
	if err != nil {
		t.Fatalf("rgb: %v", err)
	}
	if len(rgb) != 3*icled.LEDCount {
		t.Fatalf("rgb length %d, want %d", len(rgb), 3*icled.LEDCount)
	}
	if rgb[6] != 111 || rgb[7] != 222 || rgb[8] != 33 {
		t.Fatalf("pixel 2 = %v, want [111 222 33]", rgb[6:9])
	}
}
