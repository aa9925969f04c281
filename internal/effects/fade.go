package effects

import (
	"time"

	"github.com/example/icled/internal/icled"
)

// Fade is the scanner variant with a symmetric color gradient: a yellowish
// head fading through orange to dark red over three neighbors on each side.
type Fade struct {
	brightness uint8 // full-scale head brightness, 0..255
	interval   time.Duration
	col, dir   int
}

func NewFade(brightness uint8, interval time.Duration) *Fade {
	return &Fade{brightness: brightness, interval: interval, dir: 1}
}

func (f *Fade) Name() string            { return "fade" }
func (f *Fade) Interval() time.Duration { return f.interval }

func (f *Fade) Step(d *icled.Driver) error {
	for c := 0; c < Cols; c++ {
		d.SetPixel(index(c, 0), 0, 0, 0)
	}

	b := int(f.brightness)
	if f.col > 2 {
		d.SetPixel(index(f.col-3, 0), uint8(b*64/255), 0, 0)
	}
	if f.col < Cols-3 {
		d.SetPixel(index(f.col+3, 0), uint8(b*64/255), 0, 0)
	}
	if f.col > 1 {
		d.SetPixel(index(f.col-2, 0), uint8(b*150/255), uint8(b*50/255), 0)
	}
	if f.col < Cols-2 {
		d.SetPixel(index(f.col+2, 0), uint8(b*150/255), uint8(b*50/255), 0)
	}
	if f.col > 0 {
		d.SetPixel(index(f.col-1, 0), uint8(b*230/255), uint8(b*150/255), 0)
	}
	if f.col < Cols-1 {
		d.SetPixel(index(f.col+1, 0), uint8(b*230/255), uint8(b*150/255), 0)
	}
	d.SetPixel(index(f.col, 0), uint8(b*200/255), f.brightness, 0)

	if err := d.Show(); err != nil {
		return err
	}

	f.col += f.dir
	if f.col >= Cols-1 {
		f.col, f.dir = Cols-1, -1
	} else if f.col <= 0 {
		f.col, f.dir = 0, 1
	}
	return nil
}
