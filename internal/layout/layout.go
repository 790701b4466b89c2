package layout

import (
	"errors"
	"fmt"
)

// PointsPerInch converts inches to the layout unit
const PointsPerInch = 72.0

// ErrInvalidGeometry is returned when margins leave no room for content
var ErrInvalidGeometry = errors.New("invalid page geometry")

// Band ratios of the page height
const (
	headerRatio = 0.15
	bodyRatio   = 0.80
	footerStart = 0.95
)

// PageLayout is the printable geometry of one planner page, in points
type PageLayout struct {
	Width       float64
	Height      float64
	LeftMargin  float64
	RightMargin float64
	HoleOffset  float64 // extra strip reserved for punched holes
	HolesOnLeft bool
}

// NewPageLayout validates the geometry; it is the only place geometry errors surface
func NewPageLayout(width, height, leftMargin, rightMargin, holeOffset float64, holesOnLeft bool) (PageLayout, error) {
	if width <= 0 || height <= 0 {
		return PageLayout{}, fmt.Errorf("%w: page size %.2fx%.2f", ErrInvalidGeometry, width, height)
	}
	if leftMargin < 0 || rightMargin < 0 || holeOffset < 0 {
		return PageLayout{}, fmt.Errorf("%w: negative margin (left %.2f, right %.2f, holes %.2f)",
			ErrInvalidGeometry, leftMargin, rightMargin, holeOffset)
	}
	if leftMargin+rightMargin+holeOffset >= width {
		return PageLayout{}, fmt.Errorf("%w: margins %.2f + %.2f + hole offset %.2f do not fit width %.2f",
			ErrInvalidGeometry, leftMargin, rightMargin, holeOffset, width)
	}

	return PageLayout{
		Width:       width,
		Height:      height,
		LeftMargin:  leftMargin,
		RightMargin: rightMargin,
		HoleOffset:  holeOffset,
		HolesOnLeft: holesOnLeft,
	}, nil
}

// ContentLeft is the x where header and body content start
func (pl PageLayout) ContentLeft() float64 {
	if pl.HolesOnLeft {
		return pl.LeftMargin + pl.HoleOffset
	}
	return pl.LeftMargin
}

// ContentRight is the x where header and body content end
func (pl PageLayout) ContentRight() float64 {
	if pl.HolesOnLeft {
		return pl.Width - pl.RightMargin
	}
	return pl.Width - (pl.RightMargin + pl.HoleOffset)
}

// HoleStrip is the page-edge strip kept free for punched holes
func (pl PageLayout) HoleStrip() DrawArea {
	if pl.HolesOnLeft {
		return DrawArea{X: 0, Y: 0, Width: pl.LeftMargin + pl.HoleOffset, Height: pl.Height}
	}
	w := pl.RightMargin + pl.HoleOffset
	return DrawArea{X: pl.Width - w, Y: 0, Width: w, Height: pl.Height}
}

// Bands splits the page into header, body and footer.
// Header and body span the content columns; the footer spans the full page width.
func (pl PageLayout) Bands() (header, body, footer DrawArea) {
	left := pl.ContentLeft()
	width := pl.ContentRight() - left

	header = DrawArea{X: left, Y: 0, Width: width, Height: pl.Height * headerRatio}
	body = DrawArea{X: left, Y: pl.Height * headerRatio, Width: width, Height: pl.Height * bodyRatio}
	footer = DrawArea{X: 0, Y: pl.Height * footerStart, Width: pl.Width, Height: pl.Height * (1 - footerStart)}
	return header, body, footer
}

// Footer returns the centre of the footer band
func (pl PageLayout) Footer() Point {
	_, _, footer := pl.Bands()
	return Point{X: pl.Width / 2, Y: footer.CenterY()}
}

// DrawArea is a rectangle in points
type DrawArea struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (a DrawArea) Right() float64   { return a.X + a.Width }
func (a DrawArea) Bottom() float64  { return a.Y + a.Height }
func (a DrawArea) CenterX() float64 { return a.X + a.Width/2 }
func (a DrawArea) CenterY() float64 { return a.Y + a.Height/2 }

// Contains reports whether b lies entirely inside a
func (a DrawArea) Contains(b DrawArea) bool {
	const eps = 1e-9
	return b.X >= a.X-eps && b.Y >= a.Y-eps && b.Right() <= a.Right()+eps && b.Bottom() <= a.Bottom()+eps
}

// Point is a position in points
type Point struct {
	X float64
	Y float64
}

// Line is a straight segment
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
}
