// Package timing provides the timer-source and clock capabilities the
// stateful components schedule against. Callers own at most one live handle
// at a time and must cancel it before installing a replacement.
package timing

import (
	"time"
)

// Handle is a cancellable scheduled callback. Cancel is idempotent.
type Handle interface {
	Cancel()
}

// Scheduler hands out one-shot and repeating callbacks plus the monotonic
// wall time used for tap-tempo gap measurement.
type Scheduler interface {
	// ScheduleOnce fires fn once after delay.
	ScheduleOnce(delay time.Duration, fn func()) Handle

	// ScheduleRepeating fires fn every interval. Fire times are computed
	// from the installation instant, so a slow callback does not accumulate
	// drift into subsequent ticks.
	ScheduleRepeating(interval time.Duration, fn func()) Handle

	// Now returns the current time.
	Now() time.Time
}
