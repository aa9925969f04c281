// Package icled drives a fixed 7x15 matrix of GRB-protocol LEDs. It turns a
// per-pixel color frame into the one-wire PWM timing stream the LEDs expect
// and feeds it to a continuous output Transfer, restarting the transfer
// whenever new content must be shown.
package icled

// Protocol constants for the matrix. These are properties of the hardware,
// not runtime configuration.
const (
	// LEDCount is the number of LEDs on the panel (7 rows x 15 columns).
	LEDCount = 105
	// BitsPerLED is 8 bits for each of the G, R, B channels.
	BitsPerLED = 24
	// TimingBits is the number of data slots in a frame.
	TimingBits = LEDCount * BitsPerLED
	// ResetSlots is the idle tail that latches the frame. 200 slots at
	// 1.25us per slot is 250us, well past the >50us the LEDs require.
	ResetSlots = 200
	// BufferSize is the full timing buffer: data bits plus latch tail.
	BufferSize = TimingBits + ResetSlots
)

// One-wire bit timing. Every bit occupies the same period; the width of the
// high pulse decides whether it reads as 0 or 1.
const (
	bitPeriodNs = 1250
	zeroHighNs  = 400
	oneHighNs   = 800
)

// DefaultPeriod is the PWM timer period in ticks (ARR+1) the reference board
// runs at. DutyCodes(DefaultPeriod) yields the compare values 13 and 26.
const DefaultPeriod uint16 = 40

// DutyCodes derives the PWM compare values for a logical 0 and 1 bit from the
// timer period in ticks. The codes are a function of the timer configuration;
// a different clock tree needs different codes, never copied numbers.
func DutyCodes(periodTicks uint16) (zero, one uint16) {
	zero = uint16((uint32(periodTicks)*zeroHighNs + bitPeriodNs/2) / bitPeriodNs)
	one = uint16((uint32(periodTicks)*oneHighNs + bitPeriodNs/2) / bitPeriodNs)
	return zero, one
}
