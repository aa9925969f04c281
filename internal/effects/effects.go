// Package effects holds the procedural animations for the LED matrix and the
// shared mode selector that picks which one runs.
package effects

import (
	"time"

	"github.com/example/icled/internal/icled"
)

// The panel is 7 rows by 15 columns, wired column-major: LED index is
// col*Rows + row, row 0 is the top.
const (
	Rows = 7
	Cols = 15
)

func index(col, row int) int { return col*Rows + row }

// Effect is one procedural animation. Step draws a single frame and shows it;
// the runner waits Interval between steps, so the driver itself never sleeps.
type Effect interface {
	Name() string
	Interval() time.Duration
	Step(d *icled.Driver) error
}
