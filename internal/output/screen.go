package output

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/display"
	"periph.io/x/extra/devices/screen"

	"github.com/example/icled/internal/icled"
)

// Screen renders frames as ANSI blocks on the terminal, the no-hardware
// fallback. Frame-oriented like SPI; Stop is a no-op.
type Screen struct {
	drawer    display.Drawer
	img       *image.NRGBA
	zero, one uint16
}

func NewScreen(zero, one uint16) *Screen {
	return &Screen{
		drawer: screen.New(icled.LEDCount),
		img:    image.NewNRGBA(image.Rect(0, 0, icled.LEDCount, 1)),
		zero:   zero,
		one:    one,
	}
}

func (s *Screen) Start(codes []uint16) error {
	f, err := icled.Decode(codes, s.zero, s.one)
	if err != nil {
		return errors.Wrap(err, "screen transfer")
	}
	for i := 0; i < icled.LEDCount; i++ {
		r, g, b := f.Pixel(i)
		s.img.SetNRGBA(i, 0, color.NRGBA{R: r, G: g, B: b, A: 255})
	}
	return s.drawer.Draw(s.drawer.Bounds(), s.img, image.Point{})
}

func (s *Screen) Stop() error { return nil }
