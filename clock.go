package orrery

// Clock owns the simulated elapsed time. Elapsed days only ever grow while
// unpaused; the speed is always strictly positive.
type Clock struct {
	ElapsedDays   float64
	DaysPerSecond float64
	Paused        bool

	minSpeed, maxSpeed float64
}

// NewClock returns a clock at elapsed time zero running at the configured
// default speed.
func NewClock() *Clock {
	cfg := Conf()
	return &Clock{
		DaysPerSecond: cfg.DaysPerSecond,
		minSpeed:      cfg.MinSpeed,
		maxSpeed:      cfg.MaxSpeed,
	}
}

// Advance moves simulated time forward by dtSeconds of real time. Advancing
// while paused, or by a non-positive delta, is a no-op; a negative delta is
// treated as zero rather than rewinding time.
func (c *Clock) Advance(dtSeconds float64) {
	if c.Paused || dtSeconds <= 0 {
		return
	}
	c.ElapsedDays += dtSeconds * c.DaysPerSecond
}

// SetSpeed replaces the time scale. Zero and negative speeds are rejected,
// keeping the previous value: reverse time is out of scope.
func (c *Clock) SetSpeed(daysPerSecond float64) {
	if daysPerSecond <= 0 {
		return
	}
	c.DaysPerSecond = clampSpeed(daysPerSecond, c.minSpeed, c.maxSpeed)
}

// AdjustSpeed multiplies the time scale by factor, clamped to the configured
// speed range. Non-positive factors are rejected.
func (c *Clock) AdjustSpeed(factor float64) {
	if factor <= 0 {
		return
	}
	c.DaysPerSecond = clampSpeed(c.DaysPerSecond*factor, c.minSpeed, c.maxSpeed)
}

func clampSpeed(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TogglePause flips the pause flag.
func (c *Clock) TogglePause() {
	c.Paused = !c.Paused
}

// SetPaused sets the pause flag.
func (c *Clock) SetPaused(paused bool) {
	c.Paused = paused
}

// Reset rewinds elapsed time to exactly zero. Speed and pause state are
// untouched.
func (c *Clock) Reset() {
	c.ElapsedDays = 0
}
