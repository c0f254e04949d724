package eventloop_test

import (
	"testing"
	"time"

	"surfview/internal/eventloop"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestVirtualIntervalFiresInOrder(t *testing.T) {
	v := eventloop.NewVirtual(epoch)

	var fired []string
	v.SetInterval(10*time.Millisecond, func() { fired = append(fired, "a") })
	v.SetInterval(15*time.Millisecond, func() { fired = append(fired, "b") })

	v.Advance(30 * time.Millisecond)

	// a@10 b@15 a@20 a@30 b@30
	assert.Equal(t, []string{"a", "b", "a", "a", "b"}, fired)
	assert.Equal(t, epoch.Add(30*time.Millisecond), v.Now())
}

func TestVirtualClearStopsFiring(t *testing.T) {
	v := eventloop.NewVirtual(epoch)

	n := 0
	var clear func()
	clear = v.SetInterval(time.Millisecond, func() {
		n++
		if n == 3 {
			clear()
		}
	})

	v.Advance(10 * time.Millisecond)
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, v.ActiveIntervals())
}

func TestVirtualFramesRunAtWakeInstant(t *testing.T) {
	v := eventloop.NewVirtual(epoch)

	var paintedAt []time.Time
	v.SetInterval(5*time.Millisecond, func() {
		v.RequestAnimationFrame(func() { paintedAt = append(paintedAt, v.Now()) })
	})

	v.Advance(12 * time.Millisecond)

	assert.Equal(t, []time.Time{epoch.Add(5 * time.Millisecond), epoch.Add(10 * time.Millisecond)}, paintedAt)
	assert.Equal(t, 0, v.PendingFrames())
	assert.Equal(t, 2, v.Paints())
}

func TestVirtualFrameRequestedDuringPaintWaits(t *testing.T) {
	v := eventloop.NewVirtual(epoch)

	n := 0
	var frame func()
	frame = func() {
		n++
		v.RequestAnimationFrame(frame)
	}
	v.RequestAnimationFrame(frame)

	v.Paint()
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, v.PendingFrames())
}
