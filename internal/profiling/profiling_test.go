package profiling_test

import (
	"testing"
	"time"

	"surfview/internal/profiling"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestTrackAndTopN(t *testing.T) {
	c := &fakeClock{t: time.Unix(0, 0)}
	f := profiling.NewFrame(c.now)

	stop := f.Track("scheduler.render")
	c.t = c.t.Add(4200 * time.Microsecond)
	stop()

	stop = f.Track("torus.draw")
	c.t = c.t.Add(2 * time.Millisecond)
	stop()

	assert.Equal(t, 4200*time.Microsecond, f.Get("scheduler.render"))
	assert.Equal(t, "scheduler.render:4.2ms, torus.draw:2ms", f.TopN(5))
	assert.Equal(t, "scheduler.render:4.2ms", f.TopN(1))

	f.Reset()
	assert.Empty(t, f.Snapshot())
	assert.Equal(t, "", f.TopN(3))
}

func TestFormatMs(t *testing.T) {
	assert.Equal(t, "16.7ms", profiling.FormatMs(16666*time.Microsecond))
	assert.Equal(t, "0ms", profiling.FormatMs(0))
}
