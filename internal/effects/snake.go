package effects

import (
	"time"

	"github.com/example/icled/internal/icled"
)

type snakeDir uint8

const (
	dirHorizontal snakeDir = iota
	dirVertical
	dirDiagonalRD // down-right diagonal
	dirDiagonalLU // up-left diagonal
	dirModeCount
)

// Snake crawls a green trail across the panel, fading from head to tail. The
// movement direction cycles every 160 frames; the length breathes between 4
// and 16 segments, changing every 25 frames (the grow branch steps past 15
// once before it starts shrinking).
type Snake struct {
	brightness uint8
	interval   time.Duration

	tick    int
	head    int
	length  int
	growing bool
	dir     snakeDir
}

func NewSnake(brightness uint8, interval time.Duration) *Snake {
	return &Snake{brightness: brightness, interval: interval, length: 8, growing: true}
}

func (s *Snake) Name() string            { return "snake" }
func (s *Snake) Interval() time.Duration { return s.interval }

func (s *Snake) Step(d *icled.Driver) error {
	const total = Rows * Cols

	for i := 0; i < total; i++ {
		d.SetPixel(i, 0, 0, 0)
	}

	for seg := 0; seg < s.length; seg++ {
		step := s.head - seg
		if step < 0 || step >= total {
			continue
		}
		var idx int
		switch s.dir {
		case dirHorizontal:
			idx = (step%Cols)*Rows + step/Cols
		case dirVertical:
			idx = (step/Rows)*Rows + step%Rows
		case dirDiagonalRD:
			idx = (step%Cols)*Rows + step%Rows
		case dirDiagonalLU:
			idx = (Cols-1-step%Cols)*Rows + (Rows - 1 - step%Rows)
		}
		level := s.brightness - uint8(seg)*(s.brightness/uint8(s.length))
		d.SetPixel(idx, 0, level, 0)
	}

	if err := d.Show(); err != nil {
		return err
	}

	s.tick++
	s.head++

	if s.tick%160 == 0 {
		s.head = 0
		s.dir = (s.dir + 1) % dirModeCount
	}
	if s.tick%25 == 0 {
		if s.growing {
			s.length++
			if s.length > 15 {
				s.growing = false
			}
		} else if s.length > 4 {
			s.length--
		} else {
			s.growing = true
		}
	}
	if s.head > total+s.length {
		s.head = 0
	}
	return nil
}
