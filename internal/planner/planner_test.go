package planner

import (
	"errors"
	"testing"
	"time"

	"github.com/username/planner/internal/calendar"
	"github.com/username/planner/internal/config"
	"github.com/username/planner/internal/layout"
	"github.com/username/planner/internal/pagination"
	"github.com/username/planner/internal/render"
	"github.com/username/planner/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

const (
	letterWidth  = 612.0
	letterHeight = 792.0
)

func testConfig(first, last string) *config.Config {
	return &config.Config{
		Range:  config.RangeConfig{First: first, Last: last},
		Paper:  config.PaperConfig{Size: "letter"},
		Layout: config.LayoutConfig{MarginRatio: 0.02, HoleOffsetInches: 0.8, HolesOnLeft: true},
		Output: config.OutputConfig{File: "planner.pdf"},
	}
}

func generate(t *testing.T, cfg *config.Config, opts ...Option) (*render.Recorder, Summary) {
	t.Helper()
	g, err := New(cfg, zaptest.NewLogger(t), opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	rec := render.NewRecorder(letterWidth, letterHeight)
	summary, err := g.Generate(rec)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return rec, summary
}

func textsOfSize(cmds []render.Command, size float64) []string {
	var texts []string
	for _, c := range cmds {
		if c.Op == render.OpText && c.Font.Size == size {
			texts = append(texts, c.Text)
		}
	}
	return texts
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGenerateSingleSided(t *testing.T) {
	rec, summary := generate(t, testConfig("2023-03-19", "2023-03-27"))

	if rec.PageCount() != 3 || summary.Pages != 3 {
		t.Fatalf("pages = %d (summary %d), want 3", rec.PageCount(), summary.Pages)
	}
	if summary.LeftPages != 1 || summary.RightPages != 2 || summary.BlankPages != 0 {
		t.Errorf("summary = %+v", summary)
	}

	wantNumbers := [][]string{
		{"16", "17", "18", "19"},
		{"20", "21", "22"},
		{"23", "24", "25", "26"},
	}
	wantWeekdays := [][]string{
		{"Thursday", "Friday", "Saturday", "Sunday"},
		{"Monday", "Tuesday", "Wednesday"},
		{"Thursday", "Friday", "Saturday", "Sunday"},
	}
	for i := range wantNumbers {
		if got := textsOfSize(rec.Page(i), 20); !equalStrings(got, wantNumbers[i]) {
			t.Errorf("page %d day numbers = %v, want %v", i, got, wantNumbers[i])
		}
		if got := textsOfSize(rec.Page(i), 16); !equalStrings(got, wantWeekdays[i]) {
			t.Errorf("page %d weekdays = %v, want %v", i, got, wantWeekdays[i])
		}
	}
}

func TestGenerateHeaders(t *testing.T) {
	rec, _ := generate(t, testConfig("2023-03-19", "2023-03-27"))

	right := rec.Page(0)
	if got := textsOfSize(right, 14); !equalStrings(got, []string{"Priorities"}) {
		t.Errorf("right page label = %v", got)
	}
	if got := textsOfSize(right, 24); !equalStrings(got, []string{"March 2023"}) {
		t.Errorf("right page title = %v", got)
	}
	rects := 0
	for _, c := range right {
		if c.Op == render.OpRect {
			rects++
			if c.W != 10 || c.H != 10 {
				t.Errorf("priority box = %vx%v, want 10x10", c.W, c.H)
			}
		}
	}
	if rects != 3 {
		t.Errorf("right page has %d boxes, want 3", rects)
	}

	left := rec.Page(1)
	titles := map[string]bool{}
	frames := 0
	for _, c := range left {
		switch c.Op {
		case render.OpRect:
			frames++
		case render.OpText:
			titles[c.Text] = true
		}
	}
	if frames != 3 {
		t.Errorf("left page has %d calendar frames, want 3", frames)
	}
	for _, month := range []string{"February 2023", "March 2023", "April 2023"} {
		if !titles[month] {
			t.Errorf("left page is missing the %s calendar", month)
		}
	}
	if titles["Priorities"] {
		t.Error("left page carries the priorities checklist")
	}
}

func TestGenerateRightPageDivider(t *testing.T) {
	rec, _ := generate(t, testConfig("2023-03-19", "2023-03-27"))

	vertical := func(cmds []render.Command) int {
		n := 0
		for _, c := range cmds {
			if c.Op == render.OpLine && c.X == c.X2 && c.X == letterWidth/2 {
				n++
			}
		}
		return n
	}
	if got := vertical(rec.Page(0)); got != 1 {
		t.Errorf("right page has %d centre dividers, want 1", got)
	}
	if got := vertical(rec.Page(1)); got != 0 {
		t.Errorf("left page has %d centre dividers, want 0", got)
	}
}

func TestGenerateDoubleSidedLeadingBlank(t *testing.T) {
	cfg := testConfig("2023-03-20", "2023-03-27")
	cfg.Binding.DoubleSided = true

	rec, summary := generate(t, cfg)

	if summary.BlankPages != 1 || summary.Pages != 3 {
		t.Fatalf("summary = %+v, want 3 pages with one blank", summary)
	}
	if n := len(rec.Page(0)); n != 0 {
		t.Errorf("leading blank page has %d commands", n)
	}
	if got := textsOfSize(rec.Page(1), 20); !equalStrings(got, []string{"20", "21", "22"}) {
		t.Errorf("first content page = %v", got)
	}
}

func TestGenerateTrailingBlank(t *testing.T) {
	cfg := testConfig("2023-03-16", "2023-03-18")
	cfg.Binding.DoubleSided = true
	cfg.Binding.TrailingBlank = true

	rec, summary := generate(t, cfg)

	if summary.Pages%2 != 0 {
		t.Fatalf("pages = %d, want an even count", summary.Pages)
	}
	if n := len(rec.Page(rec.PageCount() - 1)); n != 0 {
		t.Errorf("trailing blank page has %d commands", n)
	}
}

func TestGenerateFooterAndGuides(t *testing.T) {
	cfg := testConfig("2023-03-19", "2023-03-27")
	cfg.Footer.Text = "personal planner for Sam"
	cfg.Layout.HoleGuides = true

	rec, _ := generate(t, cfg)

	for i := 0; i < rec.PageCount(); i++ {
		var footer, circles int
		for _, c := range rec.Page(i) {
			if c.Op == render.OpText && c.Text == cfg.Footer.Text {
				footer++
				if c.Font.Align != render.AlignCenter || c.X != letterWidth/2 {
					t.Errorf("footer drawn at %v with %v", c.X, c.Font.Align)
				}
			}
			if c.Op == render.OpCircle {
				circles++
				if c.Fill != render.Filled {
					t.Error("hole guide is not filled")
				}
			}
		}
		if footer != 1 {
			t.Errorf("page %d has %d footers, want 1", i, footer)
		}
		if circles != 3 {
			t.Errorf("page %d has %d hole guides, want 3", i, circles)
		}
	}
}

func TestGenerateKeepsHoleStripClear(t *testing.T) {
	for _, holesOnLeft := range []bool{true, false} {
		cfg := testConfig("2023-03-19", "2023-04-09")
		cfg.Layout.HolesOnLeft = holesOnLeft

		rec, _ := generate(t, cfg)

		pl, err := cfg.PageLayout(letterWidth, letterHeight)
		if err != nil {
			t.Fatal(err)
		}
		strip := pl.HoleStrip()
		inStrip := func(x float64) bool {
			const eps = 1e-9
			return x > strip.X+eps && x < strip.Right()-eps
		}

		for i := 0; i < rec.PageCount(); i++ {
			for _, c := range rec.Page(i) {
				xs := []float64{c.X}
				switch c.Op {
				case render.OpLine:
					xs = append(xs, c.X2)
				case render.OpRect:
					xs = append(xs, c.X+c.W)
				}
				for _, x := range xs {
					if inStrip(x) {
						t.Errorf("holes on left %v: page %d draws %s inside the hole strip", holesOnLeft, i, c)
					}
				}
			}
		}
	}
}

type fixedCalendar map[string][]calendar.DayInfo

func (f fixedCalendar) Notes(date time.Time) []calendar.DayInfo {
	return f[date.Format("2006-01-02")]
}

func TestGenerateDayNotes(t *testing.T) {
	cal := fixedCalendar{
		"2023-03-17": {
			{Date: dateutil.Date(2023, 3, 17), Type: calendar.DayTypeHoliday, Note: "St. Patrick's Day"},
		},
	}

	rec, _ := generate(t, testConfig("2023-03-19", "2023-03-27"), WithCalendar(cal))

	if got := textsOfSize(rec.Page(0), 10); !equalStrings(got, []string{"St. Patrick's Day"}) {
		t.Errorf("notes on page 1 = %v", got)
	}
	if got := textsOfSize(rec.Page(1), 10); len(got) != 0 {
		t.Errorf("notes on page 2 = %v, want none", got)
	}
}

func TestGenerateDropsNotesThatDoNotFit(t *testing.T) {
	var many []calendar.DayInfo
	for i := 0; i < 100; i++ {
		many = append(many, calendar.DayInfo{Type: calendar.DayTypeEvent, Note: "meeting"})
	}
	cal := fixedCalendar{"2023-03-20": many}

	rec, _ := generate(t, testConfig("2023-03-20", "2023-03-22"), WithCalendar(cal))

	got := textsOfSize(rec.Page(0), 10)
	if len(got) == 0 || len(got) >= len(many) {
		t.Errorf("drew %d of %d notes, want a partial list", len(got), len(many))
	}
	for _, c := range rec.Page(0) {
		if c.Op == render.OpText && c.Y > letterHeight*0.95 {
			t.Errorf("%s spills into the footer", c)
		}
	}
}

func TestNewRejectsInvalidRange(t *testing.T) {
	_, err := New(testConfig("2023-03-27", "2023-03-19"), zap.NewNop())
	if !errors.Is(err, pagination.ErrInvalidRange) {
		t.Errorf("New() error = %v, want ErrInvalidRange", err)
	}
}

func TestGenerateInvalidGeometryDrawsNothing(t *testing.T) {
	cfg := testConfig("2023-03-19", "2023-03-27")
	cfg.Layout.HoleOffsetInches = 9

	g, err := New(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	rec := render.NewRecorder(letterWidth, letterHeight)
	if _, err := g.Generate(rec); !errors.Is(err, layout.ErrInvalidGeometry) {
		t.Errorf("Generate() error = %v, want ErrInvalidGeometry", err)
	}
	if rec.PageCount() != 0 {
		t.Errorf("PageCount() = %d after a geometry error", rec.PageCount())
	}
}

func TestPages(t *testing.T) {
	g, err := New(testConfig("2023-03-19", "2023-03-27"), zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	pages := g.Pages()
	if len(pages) != 3 {
		t.Fatalf("Pages() = %v", pages)
	}
	if !pages[0].Anchor.Equal(dateutil.Date(2023, 3, 16)) || pages[0].Side != pagination.Right {
		t.Errorf("first page = %v", pages[0])
	}
	if r := g.Range(); !r.First.Equal(dateutil.Date(2023, 3, 19)) {
		t.Errorf("Range() = %v", r)
	}
}
