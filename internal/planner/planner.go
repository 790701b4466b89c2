package planner

import (
	"fmt"
	"strconv"
	"time"

	"github.com/username/planner/internal/calendar"
	"github.com/username/planner/internal/config"
	"github.com/username/planner/internal/layout"
	"github.com/username/planner/internal/pagination"
	"github.com/username/planner/internal/render"
	"github.com/username/planner/pkg/dateutil"
	"go.uber.org/zap"
)

var (
	dayNumberStyle = render.TextStyle{Size: 20}
	weekdayStyle   = render.TextStyle{Size: 16}
	noteStyle      = render.TextStyle{Size: 10}
	footerStyle    = render.TextStyle{Size: 10, Align: render.AlignCenter}

	ruleStyle  = render.LineStyle{Width: 0.5}
	frameStyle = render.LineStyle{Width: 0.5, Gray: 128}
	boxStyle   = render.LineStyle{Width: 1}
	guideStyle = render.LineStyle{Width: 0.3, Gray: 160}
)

// Summary describes a finished run
type Summary struct {
	Pages      int
	BlankPages int
	LeftPages  int
	RightPages int
	First      time.Time
	Last       time.Time
}

// Generator renders a planner onto a drawing surface
type Generator struct {
	cfg      *config.Config
	rng      pagination.DateRange
	calendar calendar.Calendar
	logger   *zap.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithCalendar prints the notes of cal inside each day box
func WithCalendar(cal calendar.Calendar) Option {
	return func(g *Generator) {
		if cal != nil {
			g.calendar = cal
		}
	}
}

// New validates cfg and returns a generator for its date range
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	rng, err := cfg.DateRange()
	if err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:      cfg,
		rng:      rng,
		calendar: calendar.Empty{},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Range returns the date range being printed
func (g *Generator) Range() pagination.DateRange {
	return g.rng
}

// Pages returns the page plan without drawing anything
func (g *Generator) Pages() []pagination.Page {
	return pagination.Paginate(g.rng, g.cfg.PaginationOptions())
}

// Generate draws every page onto surface. The geometry is checked before the
// first page is started, so an error leaves the surface untouched.
func (g *Generator) Generate(surface render.Surface) (Summary, error) {
	width, height := surface.Size()
	pl, err := g.cfg.PageLayout(width, height)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to build page layout: %w", err)
	}

	g.logger.Info("Generating planner",
		zap.Time("first", g.rng.First),
		zap.Time("last", g.rng.Last),
		zap.Int("days", g.rng.NumberOfDays()),
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Bool("double_sided", g.cfg.Binding.DoubleSided))

	summary := Summary{First: g.rng.First, Last: g.rng.Last}
	p := pagination.New(g.rng, g.cfg.PaginationOptions())
	for {
		page, ok := p.Next()
		if !ok {
			break
		}

		surface.NewPage()
		summary.Pages++

		if page.Blank {
			summary.BlankPages++
			g.logger.Debug("Blank page", zap.Int("page", page.Index))
			continue
		}

		if page.Side == pagination.Left {
			summary.LeftPages++
			g.drawLeftHeader(surface, pl, page.Anchor)
		} else {
			summary.RightPages++
			g.drawRightHeader(surface, pl, page.Anchor)
		}
		g.drawBody(surface, pl, page)
		g.drawFooter(surface, pl)
		if g.cfg.Layout.HoleGuides {
			drawHoleGuides(surface, pl)
		}

		g.logger.Debug("Page drawn",
			zap.Int("page", page.Index),
			zap.String("side", page.Side.String()),
			zap.Time("anchor", page.Anchor))
	}

	g.logger.Info("Planner generated",
		zap.Int("pages", summary.Pages),
		zap.Int("blank_pages", summary.BlankPages),
		zap.Int("left_pages", summary.LeftPages),
		zap.Int("right_pages", summary.RightPages))

	return summary, nil
}

// drawLeftHeader prints the previous, current and next month calendars
func (g *Generator) drawLeftHeader(s render.Surface, pl layout.PageLayout, anchor time.Time) {
	initials := dateutil.WeekdayInitials()

	for _, grid := range pl.MonthGrids(anchor) {
		s.DrawRect(grid.Frame.X, grid.Frame.Y, grid.Frame.Width, grid.Frame.Height, frameStyle)

		small := render.TextStyle{Size: grid.FontSize, Align: render.AlignCenter}
		s.DrawText(grid.Month.String(), grid.Title.X, grid.Title.Y, small)
		for i, pt := range grid.Initials {
			s.DrawText(initials[i], pt.X, pt.Y, small)
		}
		for _, cell := range grid.Cells {
			pt := cell.CellBaseline()
			s.DrawText(strconv.Itoa(cell.Day), pt.X, pt.Y, small)
		}
	}
}

// drawRightHeader prints the priorities checklist and the month title
func (g *Generator) drawRightHeader(s render.Surface, pl layout.PageLayout, anchor time.Time) {
	rh := pl.RightHeader(anchor)

	s.DrawText("Priorities", rh.Label.X, rh.Label.Y, render.TextStyle{Size: rh.LabelSize})
	for _, box := range rh.Boxes {
		s.DrawRect(box.X, box.Y, box.Width, box.Height, boxStyle)
	}
	s.DrawText(rh.TitleText, rh.Title.X, rh.Title.Y, render.TextStyle{Size: rh.TitleSize, Align: render.AlignRight})
}

func (g *Generator) drawBody(s render.Surface, pl layout.PageLayout, page pagination.Page) {
	body := pl.Body(page)

	for _, box := range body.Boxes {
		border := box.TopBorder()
		s.DrawLine(border.X1, border.Y1, border.X2, border.Y2, ruleStyle)

		number := box.NumberOrigin()
		s.DrawText(strconv.Itoa(box.Date.Day()), number.X, number.Y, dayNumberStyle)

		weekday := box.WeekdayOrigin()
		s.DrawText(dateutil.WeekdayName(dateutil.Weekday(box.Date)), weekday.X, weekday.Y, weekdayStyle)

		notes := g.calendar.Notes(box.Date)
		for i, note := range notes {
			pt := box.NoteOrigin(i)
			if pt.Y > box.Area.Bottom() {
				g.logger.Warn("Day notes do not fit",
					zap.Time("date", box.Date),
					zap.Int("dropped", len(notes)-i))
				break
			}
			s.DrawText(note.Label(), pt.X, pt.Y, noteStyle)
		}
	}

	if d := body.Divider; d != nil {
		s.DrawLine(d.X1, d.Y1, d.X2, d.Y2, ruleStyle)
	}
}

func (g *Generator) drawFooter(s render.Surface, pl layout.PageLayout) {
	if g.cfg.Footer.Text == "" {
		return
	}
	pt := pl.Footer()
	s.DrawText(g.cfg.Footer.Text, pt.X, pt.Y, footerStyle)
}

func drawHoleGuides(s render.Surface, pl layout.PageLayout) {
	for _, guide := range pl.HoleGuides() {
		s.DrawCircle(guide.Center.X, guide.Center.Y, guide.Radius, render.Filled)
		for _, tick := range guide.Ticks {
			s.DrawLine(tick.X1, tick.Y1, tick.X2, tick.Y2, guideStyle)
		}
	}
}
