package calendar

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/username/planner/pkg/dateutil"
	"go.uber.org/zap"
)

// longest run of days a single event is spread over
const maxEventDays = 366

// ICSCalendar implements Calendar using an iCalendar (.ics) export
type ICSCalendar struct {
	filePath string
	logger   *zap.Logger
	byDate   map[string][]DayInfo
}

// NewICSCalendar creates a new ICSCalendar instance
func NewICSCalendar(filePath string, logger *zap.Logger) *ICSCalendar {
	return &ICSCalendar{
		filePath: filePath,
		logger:   logger,
		byDate:   make(map[string][]DayInfo),
	}
}

// Load loads events from the file
func (ic *ICSCalendar) Load() error {
	file, err := os.Open(ic.filePath)
	if err != nil {
		return fmt.Errorf("failed to open ics file: %w", err)
	}
	defer file.Close()

	if err := ic.Read(file); err != nil {
		return fmt.Errorf("error reading ics file %s: %w", ic.filePath, err)
	}
	return nil
}

// Read parses VEVENTs from r. Each event becomes a note on every day it covers;
// events whose categories mention a holiday are typed as holidays.
func (ic *ICSCalendar) Read(r io.Reader) error {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return err
	}

	entries := 0
	for _, event := range cal.Events() {
		summary := propertyText(event.GetProperty(ics.ComponentPropertySummary))
		if summary == "" {
			continue
		}

		start, err := event.GetAllDayStartAt()
		if err != nil {
			ic.logger.Warn("Skipping event without a usable start",
				zap.String("summary", summary),
				zap.Error(err))
			continue
		}
		first := dateutil.Date(start.Year(), start.Month(), start.Day())

		days := 1
		if end, err := event.GetAllDayEndAt(); err == nil {
			last := dateutil.Date(end.Year(), end.Month(), end.Day())
			// DTEND of an all-day event is exclusive
			if n := dateutil.DaysBetween(first, last); n > days {
				days = n
			}
		}
		if days > maxEventDays {
			ic.logger.Warn("Event truncated",
				zap.String("summary", summary),
				zap.Int("days", days))
			days = maxEventDays
		}

		dayType := DayTypeEvent
		if strings.Contains(strings.ToLower(propertyText(event.GetProperty(ics.ComponentPropertyCategories))), "holiday") {
			dayType = DayTypeHoliday
		}

		for i := 0; i < days; i++ {
			date := first.AddDate(0, 0, i)
			key := date.Format("2006-01-02")
			ic.byDate[key] = append(ic.byDate[key], DayInfo{Date: date, Type: dayType, Note: summary})
		}
		entries++
	}

	ic.logger.Info("ICS calendar loaded",
		zap.String("file", ic.filePath),
		zap.Int("events", entries))

	return nil
}

// Notes returns the events on date
func (ic *ICSCalendar) Notes(date time.Time) []DayInfo {
	return append([]DayInfo(nil), ic.byDate[date.Format("2006-01-02")]...)
}

// propertyText flattens a TEXT property value onto one line
func propertyText(p *ics.IANAProperty) string {
	if p == nil {
		return ""
	}
	return strings.Join(strings.Fields(p.Value), " ")
}
