package core

import "time"

// TimeProvider abstracts the wall clock for the domain.
// Now is expected to return local time; only its hour, minute and second
// are used when deriving a time of day.
type TimeProvider interface {
	Now() time.Time
}
