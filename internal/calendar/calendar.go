package calendar

import "time"

// DayType represents the kind of note attached to a day
type DayType int

const (
	DayTypeHoliday DayType = iota + 1
	DayTypeEvent
	// DayTypeBirthday entries repeat every year on the same month and day
	DayTypeBirthday
)

func (t DayType) String() string {
	switch t {
	case DayTypeHoliday:
		return "holiday"
	case DayTypeEvent:
		return "event"
	case DayTypeBirthday:
		return "birthday"
	default:
		return "unknown"
	}
}

// ParseDayType maps the textual type of a calendar file line
func ParseDayType(s string) (DayType, bool) {
	switch s {
	case "holiday":
		return DayTypeHoliday, true
	case "event":
		return DayTypeEvent, true
	case "birthday":
		return DayTypeBirthday, true
	default:
		return 0, false
	}
}

// DayInfo is one note printed in a day box
type DayInfo struct {
	Date time.Time
	Type DayType
	Note string
}

// Label is the text printed for the note
func (d DayInfo) Label() string {
	if d.Note != "" {
		return d.Note
	}
	return d.Type.String()
}

// Calendar provides the notes printed under a day's weekday name
type Calendar interface {
	// Notes returns the notes of the given date, in file order
	Notes(date time.Time) []DayInfo
}

// Empty is a Calendar without notes
type Empty struct{}

func (Empty) Notes(time.Time) []DayInfo { return nil }
