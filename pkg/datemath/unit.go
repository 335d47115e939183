package datemath

import "time"

// Unit is a calendar unit used by Add, StartOf and EndOf.
type Unit string

const (
	Second  Unit = "seconds"
	Minute  Unit = "minutes"
	Hour    Unit = "hours"
	Day     Unit = "days"
	Week    Unit = "weeks"
	Month   Unit = "months"
	Quarter Unit = "quarters"
	Year    Unit = "years"
)

// Fixed returns the exact duration of units that do not depend on the calendar.
func (u Unit) Fixed() (time.Duration, bool) {
	switch u {
	case Second:
		return time.Second, true
	case Minute:
		return time.Minute, true
	case Hour:
		return time.Hour, true
	}
	return 0, false
}
