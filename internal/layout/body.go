package layout

import (
	"time"

	"github.com/username/planner/internal/pagination"
)

const (
	subBandRatio = 0.33
	dayIndent    = 7.0
	// baseline drop of each text line in a day box, relative to the box height
	dayLineDrop = 0.09
	noteSpacing = 12.0
)

// DayBox is the writing area of one day
type DayBox struct {
	Date time.Time
	Area DrawArea
}

// TopBorder is the rule drawn across the top of the box
func (b DayBox) TopBorder() Line {
	return Line{X1: b.Area.X, Y1: b.Area.Y, X2: b.Area.Right(), Y2: b.Area.Y}
}

// NumberOrigin is the baseline start of the day-of-month number
func (b DayBox) NumberOrigin() Point {
	return Point{X: b.Area.X + dayIndent, Y: b.Area.Y + b.Area.Height*dayLineDrop}
}

// WeekdayOrigin is the baseline start of the weekday name, beneath the number
func (b DayBox) WeekdayOrigin() Point {
	return Point{X: b.Area.X + dayIndent, Y: b.Area.Y + b.Area.Height*dayLineDrop*2}
}

// NoteOrigin is the baseline start of the i-th note line under the weekday name
func (b DayBox) NoteOrigin(i int) Point {
	return Point{X: b.Area.X + dayIndent, Y: b.Area.Y + b.Area.Height*dayLineDrop*3 + float64(i)*noteSpacing}
}

// Body is the geometry of a page body
type Body struct {
	Boxes   []DayBox
	Divider *Line // set when the last sub-band is split in two
}

// Body divides the body band into three sub-bands of day boxes.
// The last sub-band holds one day on left pages and is split at the page
// centre into two days on right pages.
func (pl PageLayout) Body(page pagination.Page) Body {
	if page.Blank {
		return Body{}
	}

	_, band, _ := pl.Bands()
	sub := band.Height * subBandRatio
	days := page.Days()

	var body Body
	for i := 0; i < 2; i++ {
		body.Boxes = append(body.Boxes, DayBox{
			Date: days[i],
			Area: DrawArea{X: band.X, Y: band.Y + sub*float64(i), Width: band.Width, Height: sub},
		})
	}

	top := band.Y + sub*2
	if len(days) == 3 {
		body.Boxes = append(body.Boxes, DayBox{
			Date: days[2],
			Area: DrawArea{X: band.X, Y: top, Width: band.Width, Height: sub},
		})
		return body
	}

	centre := pl.Width / 2
	body.Boxes = append(body.Boxes,
		DayBox{Date: days[2], Area: DrawArea{X: band.X, Y: top, Width: centre - band.X, Height: sub}},
		DayBox{Date: days[3], Area: DrawArea{X: centre, Y: top, Width: band.Right() - centre, Height: sub}},
	)
	body.Divider = &Line{X1: centre, Y1: top, X2: centre, Y2: top + sub}
	return body
}
