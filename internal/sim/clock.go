package sim

import "time"

// DefaultPeriod is the simulation tick interval.
const DefaultPeriod = 100 * time.Millisecond

// FixedStep paces simulation ticks independently of the render rate. Each
// tick is handed the real time elapsed since the previous one.
type FixedStep struct {
	period time.Duration
	last   time.Time
}

// NewFixedStep constructs a FixedStep firing every period.
func NewFixedStep(period time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetPeriod(period)
	return fs
}

// SetPeriod changes the tick interval. It is safe to call from the main loop.
func (f *FixedStep) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = DefaultPeriod
	}
	f.period = period
}

// Period reports the tick interval.
func (f *FixedStep) Period() time.Duration { return f.period }

// Restart makes now the previous tick, so time spent paused is never handed
// to the next tick.
func (f *FixedStep) Restart(now time.Time) { f.last = now }

// Due reports whether a tick is due at now and, if so, how much time passed
// since the previous tick. The first call only starts the clock.
func (f *FixedStep) Due(now time.Time) (time.Duration, bool) {
	if f.last.IsZero() {
		f.last = now
		return 0, false
	}
	dt := now.Sub(f.last)
	if dt < f.period {
		return 0, false
	}
	f.last = now
	return dt, true
}
