package layout

import (
	"fmt"
	"time"

	"github.com/username/planner/pkg/dateutil"
)

const (
	calendarRatio   = 0.7 // grid side relative to header height
	calendarTop     = 0.2
	calendarSpacing = 10.0
	// month title, weekday initials and up to six weeks
	calendarRows = 8

	priorityLabelSize = 14.0
	priorityBoxSize   = 10.0
	titleSize         = 24.0
	titleDrop         = 0.25
)

var priorityDrops = [3]float64{0.40, 0.55, 0.70}

// GridCell is the slot of one day number in a month grid
type GridCell struct {
	Day     int
	Weekday int // 0=Sunday
	Row     int
	Area    DrawArea
}

// MonthGrid is a miniature month calendar
type MonthGrid struct {
	Month    dateutil.MonthYear
	Frame    DrawArea
	Title    Point // centred
	Initials [7]Point
	Cells    []GridCell
	FontSize float64
}

// MonthGrids lays out the previous, current and next month of anchor left to right
func (pl PageLayout) MonthGrids(anchor time.Time) [3]MonthGrid {
	header, _, _ := pl.Bands()
	size := header.Height * calendarRatio

	prev, cur, next := dateutil.AdjacentMonths(anchor)
	months := [3]dateutil.MonthYear{prev, cur, next}

	var grids [3]MonthGrid
	for i, month := range months {
		frame := DrawArea{
			X:      header.X + float64(i)*(size+calendarSpacing),
			Y:      header.Height * calendarTop,
			Width:  size,
			Height: size,
		}
		grids[i] = monthGrid(month, frame)
	}
	return grids
}

func monthGrid(month dateutil.MonthYear, frame DrawArea) MonthGrid {
	col := frame.Width / 7
	row := frame.Height / calendarRows
	// baselines sit a fifth of a row above the row bottom
	baseline := func(r float64) float64 { return frame.Y + row*(r+0.8) }

	grid := MonthGrid{
		Month:    month,
		Frame:    frame,
		Title:    Point{X: frame.CenterX(), Y: baseline(0)},
		FontSize: row * 0.7,
	}

	for c := range grid.Initials {
		grid.Initials[c] = Point{X: frame.X + col*float64(c) + col/2, Y: baseline(1)}
	}

	r := 0
	first := month.First()
	for day := 1; day <= month.DaysInMonth(); day++ {
		weekday := dateutil.Weekday(first.AddDate(0, 0, day-1))
		grid.Cells = append(grid.Cells, GridCell{
			Day:     day,
			Weekday: weekday,
			Row:     r,
			Area: DrawArea{
				X:      frame.X + float64(weekday)*col,
				Y:      frame.Y + row*float64(2+r),
				Width:  col,
				Height: row,
			},
		})
		if weekday == 6 {
			r++
		}
	}
	return grid
}

// CellBaseline is where a cell's centred day number is drawn
func (c GridCell) CellBaseline() Point {
	return Point{X: c.Area.CenterX(), Y: c.Area.Y + c.Area.Height*0.8}
}

// RightHeader is the header of a Thursday-to-Sunday page
type RightHeader struct {
	Label     Point
	LabelSize float64
	Boxes     [3]DrawArea
	Title     Point // right-aligned
	TitleText string
	TitleSize float64
}

// RightHeader places the priorities checklist and the month title for anchor
func (pl PageLayout) RightHeader(anchor time.Time) RightHeader {
	header, _, _ := pl.Bands()
	y := header.Height * titleDrop

	rh := RightHeader{
		Label:     Point{X: header.X, Y: y},
		LabelSize: priorityLabelSize,
		Title:     Point{X: header.Right(), Y: y},
		TitleText: fmt.Sprintf("%s %d", dateutil.MonthName(anchor.Month()), anchor.Year()),
		TitleSize: titleSize,
	}
	for i, drop := range priorityDrops {
		rh.Boxes[i] = DrawArea{X: header.X, Y: header.Height * drop, Width: priorityBoxSize, Height: priorityBoxSize}
	}
	return rh
}
