package survival

import "time"

// Clock converts wall-clock observations into a bounded number of fixed
// simulation steps. Hosts call Observe with the current time, then loop on
// ShouldUpdate and run one tick per true.
type Clock struct {
	step       time.Duration
	maxCatchUp int

	last    time.Time
	started bool
	acc     time.Duration
	budget  int
	ticks   uint64

	windowStart time.Time
	windowTicks int
	fps         int
}

// NewClock creates a clock for tickRate steps per second that runs at most
// maxCatchUp steps per observation.
func NewClock(tickRate, maxCatchUp int) *Clock {
	if tickRate < 1 {
		tickRate = 60
	}
	if maxCatchUp < 1 {
		maxCatchUp = 1
	}
	return &Clock{
		step:       time.Second / time.Duration(tickRate),
		maxCatchUp: maxCatchUp,
	}
}

// Step returns the fixed simulation increment.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Observe adds the real time elapsed since the previous observation and
// refills the catch-up budget. It returns true when a one-second FPS window
// has just closed.
func (c *Clock) Observe(now time.Time) bool {
	if !c.started {
		c.started = true
		c.last = now
		c.windowStart = now
		c.budget = c.maxCatchUp
		return false
	}
	if now.After(c.last) {
		c.acc += now.Sub(c.last)
	}
	c.last = now
	c.budget = c.maxCatchUp

	if now.Sub(c.windowStart) >= time.Second {
		c.fps = c.windowTicks
		c.windowTicks = 0
		c.windowStart = now
		return true
	}
	return false
}

// ShouldUpdate consumes one step from the accumulator. When the catch-up
// budget runs out, the backlog beyond one partial step is dropped.
func (c *Clock) ShouldUpdate() bool {
	if c.acc < c.step {
		return false
	}
	if c.budget <= 0 {
		c.acc %= c.step
		return false
	}
	c.acc -= c.step
	c.budget--
	c.ticks++
	c.windowTicks++
	return true
}

// Poll observes now and returns how many steps to run.
func (c *Clock) Poll(now time.Time) int {
	c.Observe(now)
	n := 0
	for c.ShouldUpdate() {
		n++
	}
	return n
}

// Reset drops the accumulated backlog. The next observation starts fresh.
func (c *Clock) Reset() {
	c.started = false
	c.acc = 0
}

// Ticks returns the number of steps handed out since creation.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// FPS returns the steps counted in the last closed one-second window.
func (c *Clock) FPS() int {
	return c.fps
}
