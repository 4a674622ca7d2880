package virtual

import "time"

// A Clock provides the timestamps used to measure subsystem updates and to
// throttle reports. The default clock reads the system monotonic clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
