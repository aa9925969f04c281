package effects

import (
	"time"

	"github.com/example/icled/internal/icled"
)

// Sweep is the classic scanner: a bright red head bouncing along the top row
// with a dimmer glow trail on both sides.
type Sweep struct {
	brightness uint8 // percent of full scale, 0..100
	interval   time.Duration
	col, dir   int
}

func NewSweep(brightness uint8, interval time.Duration) *Sweep {
	return &Sweep{brightness: brightness, interval: interval, dir: 1}
}

func (s *Sweep) Name() string            { return "sweep" }
func (s *Sweep) Interval() time.Duration { return s.interval }

func (s *Sweep) Step(d *icled.Driver) error {
	for c := 0; c < Cols; c++ {
		d.SetPixel(index(c, 0), 0, 0, 0)
	}

	head := uint8(int(s.brightness) * 255 / 100)
	near := uint8(int(s.brightness) * 100 / 100)
	far := uint8(int(s.brightness) * 40 / 100)

	d.SetPixel(index(s.col, 0), head, 0, 0)
	if s.col > 0 {
		d.SetPixel(index(s.col-1, 0), near, 0, 0)
	}
	if s.col > 1 {
		d.SetPixel(index(s.col-2, 0), far, 0, 0)
	}
	if s.col < Cols-1 {
		d.SetPixel(index(s.col+1, 0), near, 0, 0)
	}
	if s.col < Cols-2 {
		d.SetPixel(index(s.col+2, 0), far, 0, 0)
	}
	if err := d.Show(); err != nil {
		return err
	}

	s.col += s.dir
	if s.col >= Cols-1 {
		s.col, s.dir = Cols-1, -1
	} else if s.col <= 0 {
		s.col, s.dir = 0, 1
	}
	return nil
}
