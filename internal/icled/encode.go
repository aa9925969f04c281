package icled

import "fmt"

// Encode serializes f into dst as one duty code per bit: LEDs in index order,
// channel bytes in wire (G, R, B) order, bits MSB first, then ResetSlots idle
// slots. dst must hold at least BufferSize codes; exactly BufferSize slots are
// written.
func Encode(f *Frame, dst []uint16, zero, one uint16) {
	pos := 0
	for i := range f {
		for _, val := range f[i] {
			for bit := 7; bit >= 0; bit-- {
				if val&(1<<bit) != 0 {
					dst[pos] = one
				} else {
					dst[pos] = zero
				}
				pos++
			}
		}
	}
	for i := 0; i < ResetSlots; i++ {
		dst[pos] = 0
		pos++
	}
}

// Decode reconstructs the frame a timing buffer was encoded from. It fails
// when the buffer has the wrong length, a data slot holds neither duty code,
// or a reset slot is not idle.
func Decode(codes []uint16, zero, one uint16) (*Frame, error) {
	if len(codes) != BufferSize {
		return nil, fmt.Errorf("timing buffer holds %d slots, want %d", len(codes), BufferSize)
	}
	var f Frame
	pos := 0
	for i := range f {
		for c := 0; c < 3; c++ {
			var val uint8
			for bit := 7; bit >= 0; bit-- {
				switch codes[pos] {
				case one:
					val |= 1 << bit
				case zero:
					// bit stays clear
				default:
					return nil, fmt.Errorf("data slot %d holds code %d, want %d or %d", pos, codes[pos], zero, one)
				}
				pos++
			}
			f[i][c] = val
		}
	}
	for ; pos < BufferSize; pos++ {
		if codes[pos] != 0 {
			return nil, fmt.Errorf("reset slot %d holds code %d, want 0", pos, codes[pos])
		}
	}
	return &f, nil
}
