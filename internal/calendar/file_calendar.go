package calendar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/username/planner/pkg/dateutil"
	"go.uber.org/zap"
)

// FileCalendar implements Calendar using a local text file
type FileCalendar struct {
	filePath  string
	logger    *zap.Logger
	byDate    map[string][]DayInfo // key: "YYYY-MM-DD"
	recurring map[string][]DayInfo // key: "MM-DD"
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath:  filePath,
		logger:    logger,
		byDate:    make(map[string][]DayInfo),
		recurring: make(map[string][]DayInfo),
	}
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	if err := fc.Read(file); err != nil {
		return fmt.Errorf("error reading calendar file %s: %w", fc.filePath, err)
	}
	return nil
}

// Read parses calendar lines from r.
// Format: YYYY-MM-DD type [note], e.g. "2025-12-25 holiday Christmas Day".
// Malformed lines are logged and skipped.
func (fc *FileCalendar) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	entries := 0

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			fc.logger.Warn("Invalid line format", zap.Int("line", lineNo), zap.String("text", line))
			continue
		}

		date, err := time.Parse("2006-01-02", parts[0])
		if err != nil {
			fc.logger.Warn("Failed to parse date", zap.Int("line", lineNo), zap.String("date", parts[0]), zap.Error(err))
			continue
		}

		dayType, ok := ParseDayType(parts[1])
		if !ok {
			fc.logger.Warn("Unknown day type", zap.Int("line", lineNo), zap.String("type", parts[1]))
			continue
		}

		info := DayInfo{
			Date: dateutil.Civil(date),
			Type: dayType,
			Note: strings.Join(parts[2:], " "),
		}

		if dayType == DayTypeBirthday {
			key := info.Date.Format("01-02")
			fc.recurring[key] = append(fc.recurring[key], info)
		} else {
			key := info.Date.Format("2006-01-02")
			fc.byDate[key] = append(fc.byDate[key], info)
		}
		entries++
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("entries", entries))

	return nil
}

// Notes returns the notes of date; yearly entries only apply from their first year on
func (fc *FileCalendar) Notes(date time.Time) []DayInfo {
	notes := append([]DayInfo(nil), fc.byDate[date.Format("2006-01-02")]...)

	for _, info := range fc.recurring[date.Format("01-02")] {
		if date.Year() < info.Date.Year() {
			continue
		}
		info.Date = dateutil.Civil(date)
		notes = append(notes, info)
	}

	return notes
}
