package pagination

import (
	"time"

	"github.com/username/planner/pkg/dateutil"
)

// Side is the binding side of a planner page
type Side int

const (
	// Left pages cover Monday to Wednesday
	Left Side = iota + 1
	// Right pages cover Thursday to Sunday
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// DaysOnPage returns how many day boxes a page of side s carries
func DaysOnPage(s Side) int {
	if s == Left {
		return 3
	}
	return 4
}

// SideOf returns the half-week side the date falls in
func SideOf(date time.Time) Side {
	if dateutil.ISOWeekday(date) <= 3 {
		return Left
	}
	return Right
}

// TopOfPage rewinds date to the first day of its half-week (Monday or Thursday)
func TopOfPage(date time.Time) time.Time {
	day := dateutil.ISOWeekday(date)
	if day <= 3 {
		// M T W on one page
		return date.AddDate(0, 0, -(day - 1))
	}
	// Th F S & S on another page
	return date.AddDate(0, 0, -(day - 4))
}

// Advance returns the anchor of the half-week following the one cursor stands in.
// From a Left day it lands on that week's Thursday, from a Right day on the next Monday.
func Advance(cursor time.Time) time.Time {
	day := dateutil.ISOWeekday(cursor)
	if day <= 3 {
		return cursor.AddDate(0, 0, 4-day)
	}
	return cursor.AddDate(0, 0, 8-day)
}
