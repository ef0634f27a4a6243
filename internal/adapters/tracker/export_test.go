package tracker

import "time"

// SetClock replaces the tracker's clock.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}
