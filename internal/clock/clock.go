// Package clock provides the logical dispatch clock. Time is counted in
// simulated work units, not wall time.
package clock

// Logical is a monotonic counter of performed work. It advances only by
// the amount of work actually serviced.
type Logical struct {
	now int
}

// New returns a clock at time zero.
func New() *Logical {
	return &Logical{}
}

// Now returns the current logical time.
func (c *Logical) Now() int {
	return c.now
}

// Advance moves the clock forward by units. Non-positive amounts are
// ignored so the clock stays monotonic.
func (c *Logical) Advance(units int) {
	if units > 0 {
		c.now += units
	}
}
