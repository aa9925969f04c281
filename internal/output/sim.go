// Package output provides Transfer implementations for the icled driver: an
// in-memory simulator, NRZ-over-SPI and serial links to real LEDs, and a
// terminal preview.
package output

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/example/icled/internal/icled"
)

// Sim is an in-memory Transfer for headless runs and tests. It records the
// stop/start sequencing and keeps a copy of the last buffer started.
type Sim struct {
	zero, one uint16

	mu      sync.Mutex
	running bool
	ops     []string
	last    []uint16
}

// NewSim returns a Sim that decodes previews with the given duty codes.
func NewSim(zero, one uint16) *Sim {
	return &Sim{zero: zero, one: one}
}

func (s *Sim) Start(codes []uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = true
	s.ops = append(s.ops, "start")
	s.last = append(s.last[:0], codes...)
	return nil
}

func (s *Sim) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.ops = append(s.ops, "stop")
	return nil
}

// Running reports whether a transfer is currently active.
func (s *Sim) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Ops returns the observed start/stop sequence.
func (s *Sim) Ops() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ops...)
}

// RGB decodes the last started buffer to packed (R, G, B) bytes.
func (s *Sim) RGB() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return nil, errors.New("no transfer started yet")
	}
	f, err := icled.Decode(s.last, s.zero, s.one)
	if err != nil {
		return nil, errors.Wrap(err, "sim transfer")
	}
	return f.AppendRGB(nil), nil
}
