// Package clock abstracts time.Now so the ticker and handlers can be
// driven by a frozen clock in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}
