package eventloop

import "time"

// Virtual is a deterministic loop driven by an explicit clock. Advance
// fires intervals in time order and opens a paint opportunity right after
// each wake-up, at the same instant.
type Virtual struct {
	now       time.Time
	intervals []*virtualInterval
	frames    []func()
	paints    int
}

type virtualInterval struct {
	period  time.Duration
	next    time.Time
	fn      func()
	cleared bool
}

// NewVirtual creates a virtual loop whose clock starts at start
func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

// Now returns the virtual time
func (v *Virtual) Now() time.Time {
	return v.now
}

// SetInterval registers fn to fire every period of virtual time
func (v *Virtual) SetInterval(period time.Duration, fn func()) (clear func()) {
	if period <= 0 {
		period = time.Millisecond
	}
	iv := &virtualInterval{period: period, next: v.now.Add(period), fn: fn}
	v.intervals = append(v.intervals, iv)
	return func() { iv.cleared = true }
}

// RequestAnimationFrame queues fn for the next paint
func (v *Virtual) RequestAnimationFrame(fn func()) {
	v.frames = append(v.frames, fn)
}

// Advance moves the clock forward by d, firing every interval due on the way
func (v *Virtual) Advance(d time.Duration) {
	end := v.now.Add(d)
	for {
		next, ok := v.earliest()
		if !ok || next.After(end) {
			break
		}
		v.now = next

		due := make([]*virtualInterval, 0, len(v.intervals))
		for _, iv := range v.intervals {
			if !iv.cleared && !iv.next.After(v.now) {
				due = append(due, iv)
			}
		}
		for _, iv := range due {
			if iv.cleared {
				continue
			}
			iv.next = iv.next.Add(iv.period)
			iv.fn()
		}
		v.Paint()
	}
	v.now = end
	v.compact()
}

// Paint runs the frame callbacks queued so far at the current time
func (v *Virtual) Paint() {
	if len(v.frames) == 0 {
		return
	}
	frames := v.frames
	v.frames = nil
	v.paints++
	for _, fn := range frames {
		fn()
	}
}

// ActiveIntervals returns how many intervals have not been cleared
func (v *Virtual) ActiveIntervals() int {
	n := 0
	for _, iv := range v.intervals {
		if !iv.cleared {
			n++
		}
	}
	return n
}

// PendingFrames returns how many frame callbacks wait for a paint
func (v *Virtual) PendingFrames() int {
	return len(v.frames)
}

// Paints returns how many paint opportunities ran callbacks
func (v *Virtual) Paints() int {
	return v.paints
}

func (v *Virtual) earliest() (time.Time, bool) {
	var next time.Time
	found := false
	for _, iv := range v.intervals {
		if iv.cleared {
			continue
		}
		if !found || iv.next.Before(next) {
			next = iv.next
			found = true
		}
	}
	return next, found
}

func (v *Virtual) compact() {
	live := v.intervals[:0]
	for _, iv := range v.intervals {
		if !iv.cleared {
			live = append(live, iv)
		}
	}
	for i := len(live); i < len(v.intervals); i++ {
		v.intervals[i] = nil
	}
	v.intervals = live
}
