package calendar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/username/planner/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

const sampleFile = `# public holidays
2023-03-17 holiday St. Patrick's Day
2023-03-17 event Dentist 9:30

1990-03-21 birthday Alex
2023-13-01 holiday Bad month
2023-03-22 meeting Unknown type
garbage
2023-03-26 holiday
`

func TestFileCalendarRead(t *testing.T) {
	fc := NewFileCalendar("sample", zaptest.NewLogger(t))
	if err := fc.Read(strings.NewReader(sampleFile)); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	notes := fc.Notes(dateutil.Date(2023, 3, 17))
	if len(notes) != 2 {
		t.Fatalf("Notes(2023-03-17) = %v, want 2 notes", notes)
	}
	if notes[0].Type != DayTypeHoliday || notes[0].Label() != "St. Patrick's Day" {
		t.Errorf("first note = %+v", notes[0])
	}
	if notes[1].Type != DayTypeEvent || notes[1].Label() != "Dentist 9:30" {
		t.Errorf("second note = %+v", notes[1])
	}

	if notes := fc.Notes(dateutil.Date(2023, 3, 22)); len(notes) != 0 {
		t.Errorf("unknown type was loaded: %v", notes)
	}

	if notes := fc.Notes(dateutil.Date(2023, 3, 26)); len(notes) != 1 || notes[0].Label() != "holiday" {
		t.Errorf("note without text = %v, want the type as label", notes)
	}
}

func TestFileCalendarBirthdaysRecur(t *testing.T) {
	fc := NewFileCalendar("sample", zap.NewNop())
	if err := fc.Read(strings.NewReader(sampleFile)); err != nil {
		t.Fatal(err)
	}

	for _, year := range []int{1990, 2023, 2031} {
		notes := fc.Notes(dateutil.Date(year, 3, 21))
		if len(notes) != 1 || notes[0].Note != "Alex" {
			t.Errorf("Notes(%d-03-21) = %v, want the birthday", year, notes)
			continue
		}
		if !notes[0].Date.Equal(dateutil.Date(year, 3, 21)) {
			t.Errorf("birthday note date = %v", notes[0].Date)
		}
	}

	if notes := fc.Notes(dateutil.Date(1989, 3, 21)); len(notes) != 0 {
		t.Errorf("birthday shown before the first year: %v", notes)
	}
}

func TestFileCalendarLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.txt")
	if err := os.WriteFile(path, []byte("2024-12-25 holiday Christmas Day\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fc := NewFileCalendar(path, zap.NewNop())
	if err := fc.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if notes := fc.Notes(dateutil.Date(2024, 12, 25)); len(notes) != 1 {
		t.Errorf("Notes() = %v", notes)
	}

	missing := NewFileCalendar(filepath.Join(t.TempDir(), "missing.txt"), zap.NewNop())
	if err := missing.Load(); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

func TestCompositeCalendar(t *testing.T) {
	dir := t.TempDir()
	public := filepath.Join(dir, "public.txt")
	personal := filepath.Join(dir, "personal.txt")
	if err := os.WriteFile(public, []byte("2024-12-25 holiday Christmas Day\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(personal, []byte("2024-12-25 event Dinner at 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cc, err := NewFromFiles([]string{public, personal}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewFromFiles() error = %v", err)
	}
	if cc.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cc.Len())
	}

	notes := cc.Notes(dateutil.Date(2024, 12, 25))
	if len(notes) != 2 || notes[0].Note != "Christmas Day" || notes[1].Note != "Dinner at 7" {
		t.Errorf("Notes() = %v, want both sources in order", notes)
	}

	if _, err := NewFromFiles([]string{public, filepath.Join(dir, "nope.txt")}, zap.NewNop()); err == nil {
		t.Error("NewFromFiles() with a missing file succeeded")
	}

	if notes := (Empty{}).Notes(dateutil.Date(2024, 12, 25)); notes != nil {
		t.Errorf("Empty.Notes() = %v", notes)
	}
}

const sampleICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//planner//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:1@test\r\n" +
	"DTSTART;VALUE=DATE:20231225\r\n" +
	"DTEND;VALUE=DATE:20231227\r\n" +
	"SUMMARY:Christmas break\r\n" +
	"CATEGORIES:Holiday\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:2@test\r\n" +
	"DTSTART:20231228T093000Z\r\n" +
	"DTEND:20231228T103000Z\r\n" +
	"SUMMARY:Dentist\\, check-up\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:3@test\r\n" +
	"DTSTART;VALUE=DATE:20231229\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestICSCalendarRead(t *testing.T) {
	ic := NewICSCalendar("sample.ics", zaptest.NewLogger(t))
	if err := ic.Read(strings.NewReader(sampleICS)); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	for _, day := range []int{25, 26} {
		notes := ic.Notes(dateutil.Date(2023, 12, day))
		if len(notes) != 1 || notes[0].Note != "Christmas break" || notes[0].Type != DayTypeHoliday {
			t.Errorf("Notes(2023-12-%d) = %v, want the holiday", day, notes)
		}
	}
	if notes := ic.Notes(dateutil.Date(2023, 12, 27)); len(notes) != 0 {
		t.Errorf("exclusive DTEND was printed: %v", notes)
	}

	notes := ic.Notes(dateutil.Date(2023, 12, 28))
	if len(notes) != 1 || notes[0].Note != "Dentist, check-up" || notes[0].Type != DayTypeEvent {
		t.Errorf("Notes(2023-12-28) = %v, want the timed event", notes)
	}

	if notes := ic.Notes(dateutil.Date(2023, 12, 29)); len(notes) != 0 {
		t.Errorf("event without summary was loaded: %v", notes)
	}
}

func TestICSCalendarRejectsGarbage(t *testing.T) {
	ic := NewICSCalendar("bad.ics", zap.NewNop())
	if err := ic.Read(strings.NewReader("not a calendar\n")); err == nil {
		t.Error("Read() of a non-calendar succeeded")
	}
}

func TestNewFromFilesPicksICS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "work.ics")
	if err := os.WriteFile(path, []byte(sampleICS), 0o644); err != nil {
		t.Fatal(err)
	}

	cc, err := NewFromFiles([]string{path}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewFromFiles() error = %v", err)
	}
	if notes := cc.Notes(dateutil.Date(2023, 12, 25)); len(notes) != 1 {
		t.Errorf("Notes() = %v, want the ics event", notes)
	}
}
