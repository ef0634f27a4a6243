package metrics

import "time"

// SetClock replaces the clock used for timestamps.
func (r *Recorder) SetClock(now func() time.Time) {
	r.now = now
}
