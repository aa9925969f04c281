package effects

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/icled/internal/icled"
)

// Runner advances whichever effect is currently selected, spacing frames by
// the effect's own interval. The inter-frame delay lives here, never in the
// driver.
type Runner struct {
	drv     *icled.Driver
	sel     *Selector
	effects map[Mode]Effect
	log     zerolog.Logger
}

// NewRunner wires the standard effect set at the given head brightness
// (0..100 for the sweep, full scale for the rest; the starfield runs at half
// to keep the background subtle).
func NewRunner(drv *icled.Driver, sel *Selector, brightness uint8, log zerolog.Logger) *Runner {
	return &Runner{
		drv: drv,
		sel: sel,
		effects: map[Mode]Effect{
			ModeSweep:     NewSweep(brightness, 80*time.Millisecond),
			ModeFade:      NewFade(brightness, 100*time.Millisecond),
			ModeStarfield: NewStarfield(brightness/2, 100*time.Millisecond, nil),
			ModeSnake:     NewSnake(brightness, 60*time.Millisecond),
		},
		log: log,
	}
}

// Run steps effects until ctx is canceled. The selector is re-read before
// every frame so a mode switch takes effect on the next step.
func (r *Runner) Run(ctx context.Context) error {
	last := r.sel.Current()
	r.log.Info().Stringer("mode", last).Msg("effect runner starting")

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		mode := r.sel.Current()
		if mode != last {
			r.log.Info().Stringer("mode", mode).Msg("effect switched")
			last = mode
		}
		eff, ok := r.effects[mode]
		if !ok {
			// An unknown mode blanks the panel rather than freezing it.
			if err := r.drv.Clear(); err != nil {
				return err
			}
			timer.Reset(100 * time.Millisecond)
			continue
		}
		if err := eff.Step(r.drv); err != nil {
			return err
		}
		timer.Reset(eff.Interval())
	}
}
