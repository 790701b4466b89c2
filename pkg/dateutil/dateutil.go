package dateutil

import (
	"fmt"
	"time"
)

const secondsPerDay = 24 * 60 * 60

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var weekdayInitials = [7]string{"S", "M", "T", "W", "T", "F", "S"}

// MonthYear identifies a calendar month without a day component
type MonthYear struct {
	Month time.Month
	Year  int
}

// First returns the first day of the month
func (my MonthYear) First() time.Time {
	return Date(my.Year, my.Month, 1)
}

// DaysInMonth returns the number of days in the month
func (my MonthYear) DaysInMonth() int {
	return DaysInMonth(my.Month, my.Year)
}

func (my MonthYear) String() string {
	return fmt.Sprintf("%s %d", MonthName(my.Month), my.Year)
}

// Date returns the civil date y-m-d at midnight UTC.
// All planner arithmetic runs on UTC midnights so AddDate never crosses a DST shift.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Civil drops the clock and location of t, keeping its wall-clock date
func Civil(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year
func DaysInMonth(month time.Month, year int) int {
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// Weekday returns 0=Sunday .. 6=Saturday
func Weekday(date time.Time) int {
	return int(date.Weekday())
}

// ISOWeekday returns 1=Monday .. 7=Sunday
func ISOWeekday(date time.Time) int {
	weekday := Weekday(date)
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return weekday
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	return StartOfDay(date.AddDate(0, 0, -(ISOWeekday(date) - 1)))
}

// WeekNumber returns the Monday-based ISO week number for the given date
func WeekNumber(date time.Time) (year int, week int) {
	year, week = date.ISOWeek()
	return
}

// AdjacentMonths returns the month before, the month of, and the month after date.
// The day of month of date never influences the result.
func AdjacentMonths(date time.Time) (prev, current, next MonthYear) {
	first := Date(date.Year(), date.Month(), 1)
	p := first.AddDate(0, -1, 0)
	n := first.AddDate(0, 1, 0)

	return MonthYear{Month: p.Month(), Year: p.Year()},
		MonthYear{Month: first.Month(), Year: first.Year()},
		MonthYear{Month: n.Month(), Year: n.Year()}
}

// MonthName returns the English name of month
func MonthName(month time.Month) string {
	return monthNames[month-1]
}

// WeekdayName returns the English name of weekday (0=Sunday)
func WeekdayName(weekday int) string {
	return weekdayNames[weekday]
}

// WeekdayInitials returns the column headings of a Sunday-first month grid
func WeekdayInitials() [7]string {
	return weekdayInitials
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// DaysBetween returns the number of whole days from a to b
func DaysBetween(a, b time.Time) int {
	return int((Civil(b).Unix() - Civil(a).Unix()) / secondsPerDay)
}

// ParseDate parses a date string in various formats and returns its civil date
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"2006/01/02",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z07:00",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return Civil(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised date %q", dateStr)
}
