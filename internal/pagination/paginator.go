package pagination

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/planner/pkg/dateutil"
)

// ErrInvalidRange is returned when the last date of a range precedes the first
var ErrInvalidRange = errors.New("invalid date range")

// DateRange is the span of days the planner is printed for.
// Last is the pagination boundary: a half-week anchored on or after Last is not
// printed, except the half-week containing First which is always printed.
type DateRange struct {
	First time.Time
	Last  time.Time
}

// NewDateRange validates and normalises first and last to civil dates
func NewDateRange(first, last time.Time) (DateRange, error) {
	first = dateutil.Civil(first)
	last = dateutil.Civil(last)

	if last.Before(first) {
		return DateRange{}, fmt.Errorf("%w: %s is before %s",
			ErrInvalidRange, last.Format("2006-01-02"), first.Format("2006-01-02"))
	}

	return DateRange{First: first, Last: last}, nil
}

// NumberOfDays returns the number of days from First to Last
func (r DateRange) NumberOfDays() int {
	return dateutil.DaysBetween(r.First, r.Last)
}

// FirstWeekday returns the weekday of First (0=Sunday)
func (r DateRange) FirstWeekday() int {
	return dateutil.Weekday(r.First)
}

// LastWeekday returns the weekday of Last (0=Sunday)
func (r DateRange) LastWeekday() int {
	return dateutil.Weekday(r.Last)
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.First.Format("2006-01-02"), r.Last.Format("2006-01-02"))
}

// Page describes one logical page of the planner
type Page struct {
	Index  int
	Anchor time.Time // first day of the half-week; zero for blank pages
	Side   Side      // zero for blank pages
	Blank  bool
}

// Days returns the dates drawn on the page, starting at the anchor
func (p Page) Days() []time.Time {
	if p.Blank {
		return nil
	}

	days := make([]time.Time, DaysOnPage(p.Side))
	for i := range days {
		days[i] = p.Anchor.AddDate(0, 0, i)
	}
	return days
}

func (p Page) String() string {
	if p.Blank {
		return fmt.Sprintf("#%d blank", p.Index)
	}
	return fmt.Sprintf("#%d %s %s", p.Index, p.Side, p.Anchor.Format("2006-01-02 Mon"))
}

// State is the paginator's position in its iteration
type State int

const (
	Start State = iota
	EmittingLeft
	EmittingRight
	Done
)

func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case EmittingLeft:
		return "emitting-left"
	case EmittingRight:
		return "emitting-right"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Options control binding-related pagination rules
type Options struct {
	// SingleSided disables the duplex leading blank page
	SingleSided bool
	// TrailingBlank pads a duplex document to an even page count
	TrailingBlank bool
}

// Paginator walks a DateRange one half-week at a time.
// The cursor always stands on a half-week anchor between calls to Next.
type Paginator struct {
	rng    DateRange
	opts   Options
	cursor time.Time
	index  int
	state  State
	pad    bool
}

// New creates a paginator positioned on the half-week containing rng.First
func New(rng DateRange, opts Options) *Paginator {
	return &Paginator{
		rng:    rng,
		opts:   opts,
		cursor: TopOfPage(rng.First),
		state:  Start,
	}
}

// State returns the current state of the iteration
func (p *Paginator) State() State {
	return p.state
}

// Next returns the next page, or false once the range is exhausted
func (p *Paginator) Next() (Page, bool) {
	switch p.state {
	case Done:
		if p.pad {
			p.pad = false
			return p.blank(), true
		}
		return Page{}, false

	case Start:
		p.state = stateFor(p.cursor)
		if !p.opts.SingleSided && SideOf(p.cursor) == Left {
			return p.blank(), true
		}
	}

	page := Page{
		Index:  p.index,
		Anchor: p.cursor,
		Side:   SideOf(p.cursor),
	}
	p.index++

	p.cursor = Advance(p.cursor)
	if p.cursor.Before(p.rng.Last) {
		p.state = stateFor(p.cursor)
	} else {
		p.state = Done
		p.pad = p.opts.TrailingBlank && !p.opts.SingleSided && p.index%2 == 1
	}

	return page, true
}

func (p *Paginator) blank() Page {
	page := Page{Index: p.index, Blank: true}
	p.index++
	return page
}

func stateFor(cursor time.Time) State {
	if SideOf(cursor) == Left {
		return EmittingLeft
	}
	return EmittingRight
}

// Paginate collects every page of rng
func Paginate(rng DateRange, opts Options) []Page {
	// two half-weeks per seven days, plus the partial ends and blanks
	pages := make([]Page, 0, rng.NumberOfDays()*2/7+4)

	p := New(rng, opts)
	for {
		page, ok := p.Next()
		if !ok {
			return pages
		}
		pages = append(pages, page)
	}
}
