package core

import "time"

// FixedStep paces a headless loop at a steady rounds-per-second rate.
// Unlike a frame-driven loop there is nothing else to do between rounds,
// so Wait blocks instead of being polled.
type FixedStep struct {
	step time.Duration
	next time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Takes effect from the next Wait.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Wait sleeps until the next round is due. The schedule is anchored to the
// first call, so a slow round shortens the following sleep rather than
// shifting every later round.
func (f *FixedStep) Wait() {
	now := time.Now()
	if f.next.IsZero() {
		f.next = now
		return
	}
	f.next = f.next.Add(f.step)
	if f.next.Before(now) {
		f.next = now
		return
	}
	time.Sleep(f.next.Sub(now))
}
