package icled

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Driver owns the pixel frame and the timing buffers and feeds a Transfer.
// Show encodes into the buffer the transfer is not reading from, swaps, and
// restarts the transfer, so a running transfer never sees a half-encoded
// frame.
//
// All methods are safe for concurrent use; the effect loop and the control
// server both reach the driver.
type Driver struct {
	tr        Transfer
	log       zerolog.Logger
	zero, one uint16

	mu      sync.Mutex
	frame   Frame
	bufs    [2][BufferSize]uint16
	active  int  // buffer last handed to the transfer
	started bool // set once the first transfer has been started
	shown   uint64
}

// New returns a Driver emitting to tr with duty codes derived from
// periodTicks. The period must be long enough to yield two distinct nonzero
// codes below the period.
func New(tr Transfer, periodTicks uint16, log zerolog.Logger) (*Driver, error) {
	zero, one := DutyCodes(periodTicks)
	if zero == 0 || one <= zero || one >= periodTicks {
		return nil, fmt.Errorf("period of %d ticks cannot encode distinct duty codes", periodTicks)
	}
	return &Driver{tr: tr, log: log, zero: zero, one: one}, nil
}

// Init clears the matrix and starts the output transfer for the first time.
// Call exactly once before SetPixel or Show.
func (d *Driver) Init() error {
	return d.Clear()
}

// SetPixel stores the color for one LED. An out-of-range index is a silent
// no-op. The value becomes visible on the next Show.
func (d *Driver) SetPixel(index int, r, g, b uint8) {
	d.mu.Lock()
	d.frame.Set(index, r, g, b)
	d.mu.Unlock()
}

// Pixel reads back the stored color in (R, G, B) order. An out-of-range index
// reads as black.
func (d *Driver) Pixel(index int) (r, g, b uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame.Pixel(index)
}

// Show encodes the current frame and restarts the output transfer over it.
// Callers are responsible for spacing successive calls; a frame takes
// TimingBits bit periods plus the latch tail to reach the LEDs.
func (d *Driver) Show() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.show()
}

// Clear blacks out every LED and shows immediately.
func (d *Driver) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frame.Fill(0, 0, 0)
	return d.show()
}

func (d *Driver) show() error {
	next := 1 - d.active
	Encode(&d.frame, d.bufs[next][:], d.zero, d.one)
	d.active = next
	// Stop before start: kicking off a transfer while one runs is undefined
	// on the hardware. The very first start has nothing to stop.
	if d.started {
		if err := d.tr.Stop(); err != nil {
			d.log.Error().Err(err).Msg("stopping output transfer")
			return fmt.Errorf("stop transfer: %w", err)
		}
	}
	if err := d.tr.Start(d.bufs[d.active][:]); err != nil {
		d.log.Error().Err(err).Msg("starting output transfer")
		return fmt.Errorf("start transfer: %w", err)
	}
	d.started = true
	d.shown++
	return nil
}

// Snapshot returns the current frame as packed (R, G, B) bytes.
func (d *Driver) Snapshot() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame.AppendRGB(make([]byte, 0, 3*LEDCount))
}

// Frames returns how many frames have been shown since Init.
func (d *Driver) Frames() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown
}
