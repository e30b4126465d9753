package dnssecval

import (
	"sync/atomic"
	"time"
)

// SystemClock implements Clock using the wall clock, with an override
// slot that, when set, replaces time.Now() completely. This enables
// deterministic tests and operational pinning (e.g. replaying a
// recorded response against the signature window it was captured
// under).
type SystemClock struct {
	override   atomic.Uint32
	hasOverride atomic.Bool
}

// NewSystemClock returns a SystemClock with no override set.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the override value if one is set, otherwise the current
// wall-clock time truncated to 32 bits.
func (c *SystemClock) Now() uint32 {
	if c.hasOverride.Load() {
		return c.override.Load()
	}
	return uint32(time.Now().Unix()) // #nosec G115
}

// SetOverride pins Now() to return t until ClearOverride is called.
func (c *SystemClock) SetOverride(t uint32) {
	c.override.Store(t)
	c.hasOverride.Store(true)
}

// ClearOverride removes a pinned time, reverting to the wall clock.
func (c *SystemClock) ClearOverride() {
	c.hasOverride.Store(false)
}

// FixedClock is a Clock that always returns the same value; convenient
// for tests that don't need the override/clear dance.
type FixedClock uint32

// Now implements Clock.
func (f FixedClock) Now() uint32 {
	return uint32(f)
}
