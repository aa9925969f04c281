package effects

import (
	"math/rand"
	"time"

	"github.com/example/icled/internal/icled"
)

// maxStars bounds how many stars can blink at once.
const maxStars = 10

type star struct {
	index  int
	age    uint8
	yellow bool
}

// Starfield blinks short-lived white and yellow stars over a cyan background.
// Stars spawn with ~15% probability per free slot per frame and live 4 to 8
// frames before fading back into the background.
type Starfield struct {
	brightness uint8
	interval   time.Duration
	rng        *rand.Rand
	stars      [maxStars]star
	primed     bool
}

// NewStarfield creates the effect. A nil rng gets a time-seeded one; tests
// pass a fixed seed.
func NewStarfield(brightness uint8, interval time.Duration, rng *rand.Rand) *Starfield {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Starfield{brightness: brightness, interval: interval, rng: rng}
}

func (s *Starfield) Name() string            { return "starfield" }
func (s *Starfield) Interval() time.Duration { return s.interval }

func (s *Starfield) background(d *icled.Driver, i int) {
	d.SetPixel(i, 0, s.brightness/2, s.brightness)
}

func (s *Starfield) Step(d *icled.Driver) error {
	if !s.primed {
		for i := 0; i < icled.LEDCount; i++ {
			s.background(d, i)
		}
		if err := d.Show(); err != nil {
			return err
		}
		s.primed = true
	}

	for i := range s.stars {
		if s.stars[i].age == 0 && s.rng.Intn(100) < 15 {
			s.stars[i].index = s.rng.Intn(icled.LEDCount)
			s.stars[i].age = uint8(4 + s.rng.Intn(5))
			s.stars[i].yellow = s.rng.Intn(2) == 1
		}
	}

	for i := range s.stars {
		st := &s.stars[i]
		if st.age == 0 {
			continue
		}
		if st.yellow {
			d.SetPixel(st.index, s.brightness, s.brightness, 0)
		} else {
			d.SetPixel(st.index, s.brightness, s.brightness, s.brightness)
		}
		st.age--
		if st.age == 0 {
			s.background(d, st.index)
		}
	}
	return d.Show()
}
