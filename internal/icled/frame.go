package icled

// Frame holds the desired color of every LED, stored in wire (G, R, B) order.
// The zero value is an all-black frame.
type Frame [LEDCount][3]uint8

// Set stores the color for the LED at index. An out-of-range index is
// ignored. The value becomes visible on the next Show.
func (f *Frame) Set(index int, r, g, b uint8) {
	if index < 0 || index >= LEDCount {
		return
	}
	f[index][0] = g // wire order is G, R, B
	f[index][1] = r
	f[index][2] = b
}

// Pixel returns the stored color at index in logical (R, G, B) order.
// An out-of-range index reads as black.
func (f *Frame) Pixel(index int) (r, g, b uint8) {
	if index < 0 || index >= LEDCount {
		return 0, 0, 0
	}
	return f[index][1], f[index][0], f[index][2]
}

// Fill sets every LED to the same color.
func (f *Frame) Fill(r, g, b uint8) {
	for i := range f {
		f[i][0], f[i][1], f[i][2] = g, r, b
	}
}

// AppendRGB appends the frame as packed (R, G, B) bytes and returns the
// extended slice.
func (f *Frame) AppendRGB(dst []byte) []byte {
	for i := range f {
		dst = append(dst, f[i][1], f[i][0], f[i][2])
	}
	return dst
}
