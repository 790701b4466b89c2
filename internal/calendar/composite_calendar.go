package calendar

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// CompositeCalendar merges the notes of several calendars, in order
type CompositeCalendar struct {
	sources []Calendar
	logger  *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(logger *zap.Logger, sources ...Calendar) *CompositeCalendar {
	return &CompositeCalendar{
		sources: sources,
		logger:  logger,
	}
}

type fileSource interface {
	Calendar
	Load() error
}

// NewFromFiles loads one calendar per path, iCalendar for .ics files and the
// line format otherwise. Any unreadable file fails the whole set.
func NewFromFiles(paths []string, logger *zap.Logger) (*CompositeCalendar, error) {
	cc := NewCompositeCalendar(logger)
	for _, path := range paths {
		var source fileSource
		if strings.EqualFold(filepath.Ext(path), ".ics") {
			source = NewICSCalendar(path, logger)
		} else {
			source = NewFileCalendar(path, logger)
		}
		if err := source.Load(); err != nil {
			return nil, fmt.Errorf("failed to load notes calendar: %w", err)
		}
		cc.sources = append(cc.sources, source)
	}

	cc.logger.Debug("Notes calendars loaded", zap.Int("sources", len(cc.sources)))
	return cc, nil
}

// Notes returns the notes of every source for date
func (cc *CompositeCalendar) Notes(date time.Time) []DayInfo {
	var notes []DayInfo
	for _, source := range cc.sources {
		notes = append(notes, source.Notes(date)...)
	}
	return notes
}

// Len returns the number of sources
func (cc *CompositeCalendar) Len() int {
	return len(cc.sources)
}
