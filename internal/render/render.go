package render

// Align is the horizontal anchoring of a text run relative to its x coordinate
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// TextStyle is passed with every text call; surfaces never carry a current font size
type TextStyle struct {
	Size  float64
	Align Align
}

// LineStyle describes a stroke. Gray is 0 (black) to 255 (white).
type LineStyle struct {
	Width float64
	Gray  int
}

// FillStyle describes how a circle is painted
type FillStyle int

const (
	Outline FillStyle = iota
	Filled
)

// Surface is the drawing backend the planner renders onto.
// All coordinates are in points with the origin at the top-left corner and y
// growing downwards; text y is the baseline.
type Surface interface {
	DrawText(text string, x, y float64, style TextStyle)
	DrawLine(x1, y1, x2, y2 float64, style LineStyle)
	DrawRect(x, y, w, h float64, style LineStyle)
	DrawCircle(x, y, r float64, style FillStyle)
	NewPage()
	Size() (width, height float64)
}
