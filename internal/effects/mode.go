package effects

import "sync/atomic"

// Mode selects which effect the runner advances.
type Mode uint32

const (
	ModeSweep Mode = iota
	ModeFade
	ModeStarfield
	ModeSnake
	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeSweep:
		return "sweep"
	case ModeFade:
		return "fade"
	case ModeStarfield:
		return "starfield"
	case ModeSnake:
		return "snake"
	default:
		return "unknown"
	}
}

// ParseMode maps an effect name to its Mode.
func ParseMode(name string) (Mode, bool) {
	for m := Mode(0); m < modeCount; m++ {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

// Selector is the shared effect-mode word. The control server writes it and
// the runner re-reads it every frame; it stands in for the volatile variable
// a button interrupt would flip on the reference hardware, so it is an atomic
// rather than a plain field.
type Selector struct {
	v atomic.Uint32
}

// Current returns the selected mode.
func (s *Selector) Current() Mode {
	return Mode(s.v.Load())
}

// Set selects m. An out-of-range mode is ignored.
func (s *Selector) Set(m Mode) {
	if m >= modeCount {
		return
	}
	s.v.Store(uint32(m))
}

// Next advances to the following mode, wrapping past the last one, and
// returns the new mode.
func (s *Selector) Next() Mode {
	for {
		cur := s.v.Load()
		next := (cur + 1) % uint32(modeCount)
		if s.v.CompareAndSwap(cur, next) {
			return Mode(next)
		}
	}
}
