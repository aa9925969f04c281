package icled

import "testing"

func TestFrameSetAndReadBack(t *testing.T) {
	var f Frame
	for i := 0; i < LEDCount; i++ {
		f.Set(i, uint8(i), uint8(i/2), uint8(255-i))
	}
	for i := 0; i < LEDCount; i++ {
		r, g, b := f.Pixel(i)
		if r != uint8(i) || g != uint8(i/2) || b != uint8(255-i) {
			t.Fatalf("pixel %d = (%d, %d, %d), want (%d, %d, %d)", i, r, g, b, uint8(i), uint8(i/2), uint8(255-i))
		}
	}
}

func TestFrameWireOrderIsGRB(t *testing.T) {
	var f Frame
	f.Set(0, 1, 2, 3)
	if f[0][0] != 2 || f[0][1] != 1 || f[0][2] != 3 {
		t.Fatalf("stored triple = %v, want [g r b] = [2 1 3]", f[0])
	}
}

func TestFrameOutOfRangeIsNoOp(t *testing.T) {
	var f Frame
	f.Set(2, 10, 20, 30)
	before := f

	f.Set(-1, 255, 255, 255)
	f.Set(LEDCount, 255, 255, 255)
	f.Set(LEDCount+37, 255, 255, 255)

	if f != before {
		t.Fatal("out-of-range Set mutated the frame")
	}
	if r, g, b := f.Pixel(LEDCount); r != 0 || g != 0 || b != 0 {
		t.Fatalf("out-of-range Pixel = (%d, %d, %d), want black", r, g, b)
	}
}

func TestFrameFillAndAppendRGB(t *testing.T) {
	var f Frame
	f.Fill(7, 8, 9)
	rgb := f.AppendRGB(nil)
	if len(rgb) != 3*LEDCount {
		t.Fatalf("AppendRGB returned %d bytes, want %d", len(rgb), 3*LEDCount)
	}
	for i := 0; i < LEDCount; i++ {
		if rgb[i*3] != 7 || rgb[i*3+1] != 8 || rgb[i*3+2] != 9 {
			t.Fatalf("pixel %d bytes = %v, want [7 8 9]", i, rgb[i*3:i*3+3])
		}
	}
}
