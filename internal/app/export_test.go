package app

import "time"

// SetClock replaces the clock used for build durations and labels.
func (a *App) SetClock(now func() time.Time) {
	a.now = now
}
