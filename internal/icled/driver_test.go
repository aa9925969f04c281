package icled

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTransfer captures the stop/start sequence and the last buffer
// handed to Start.
type recordingTransfer struct {
	ops       []string
	last      []uint16
	failStart bool
	failStop  bool
}

func (r *recordingTransfer) Start(codes []uint16) error {
	if r.failStart {
		return errors.New("start refused")
	}
	r.ops = append(r.ops, "start")
	r.last = append(r.last[:0], codes...)
	return nil
}

func (r *recordingTransfer) Stop() error {
	if r.failStop {
		return errors.New("stop refused")
	}
	r.ops = append(r.ops, "stop")
	return nil
}

func newTestDriver(t *testing.T) (*Driver, *recordingTransfer) {
	t.Helper()
	tr := &recordingTransfer{}
	d, err := New(tr, DefaultPeriod, zerolog.Nop())
	require.NoError(t, err)
	return d, tr
}

func TestNewRejectsUnusablePeriods(t *testing.T) {
	tr := &recordingTransfer{}
	for _, period := range []uint16{0, 1, 2} {
		_, err := New(tr, period, zerolog.Nop())
		assert.Error(t, err, "period %d", period)
	}
}

func TestInitStartsWithoutStop(t *testing.T) {
	d, tr := newTestDriver(t)
	require.NoError(t, d.Init())

	// The very first start has no running transfer to stop.
	assert.Equal(t, []string{"start"}, tr.ops)

	zero, one := DutyCodes(DefaultPeriod)
	f, err := Decode(tr.last, zero, one)
	require.NoError(t, err)
	assert.Equal(t, Frame{}, *f, "init must latch an all-black frame")
}

func TestShowStopsBeforeStarting(t *testing.T) {
	d, tr := newTestDriver(t)
	require.NoError(t, d.Init())
	d.SetPixel(0, 255, 0, 0)
	require.NoError(t, d.Show())

	assert.Equal(t, []string{"start", "stop", "start"}, tr.ops)
}

func TestShowIsIdempotentForUnchangedContent(t *testing.T) {
	d, tr := newTestDriver(t)
	require.NoError(t, d.Init())
	d.SetPixel(17, 1, 2, 3)
	d.SetPixel(104, 255, 128, 64)

	require.NoError(t, d.Show())
	first := append([]uint16(nil), tr.last...)

	require.NoError(t, d.Show())
	assert.Equal(t, first, tr.last, "identical content must encode bit-identically")
}

func TestOutOfRangeSetPixelLeavesEncodingUntouched(t *testing.T) {
	d, tr := newTestDriver(t)
	require.NoError(t, d.Init())
	d.SetPixel(5, 9, 9, 9)
	require.NoError(t, d.Show())
	before := append([]uint16(nil), tr.last...)

	d.SetPixel(LEDCount, 255, 255, 255)
	require.NoError(t, d.Show())
	assert.Equal(t, before, tr.last)
}

func TestClearBlacksOutAndShows(t *testing.T) {
	d, tr := newTestDriver(t)
	require.NoError(t, d.Init())
	d.SetPixel(3, 200, 100, 50)
	require.NoError(t, d.Show())

	shows := len(tr.ops)
	require.NoError(t, d.Clear())
	assert.Greater(t, len(tr.ops), shows, "clear must push a frame immediately")

	for i := 0; i < LEDCount; i++ {
		r, g, b := d.Pixel(i)
		assert.Zero(t, r)
		assert.Zero(t, g)
		assert.Zero(t, b)
	}
}

func TestShowSurfacesTransferErrors(t *testing.T) {
	d, tr := newTestDriver(t)
	require.NoError(t, d.Init())

	tr.failStop = true
	assert.Error(t, d.Show())

	tr.failStop = false
	tr.failStart = true
	assert.Error(t, d.Show())
}

func TestSnapshotAndFrames(t *testing.T) {
	d, _ := newTestDriver(t)
	require.NoError(t, d.Init())
	assert.Equal(t, uint64(1), d.Frames())

	d.SetPixel(0, 1, 2, 3)
	require.NoError(t, d.Show())
	assert.Equal(t, uint64(2), d.Frames())

	rgb := d.Snapshot()
	require.Len(t, rgb, 3*LEDCount)
	assert.Equal(t, []byte{1, 2, 3}, rgb[:3])
}
