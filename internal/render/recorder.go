package render

import "fmt"

// Op names a recorded drawing primitive
type Op string

const (
	OpText   Op = "text"
	OpLine   Op = "line"
	OpRect   Op = "rect"
	OpCircle Op = "circle"
)

// Command is one recorded drawing call
type Command struct {
	Op     Op
	Text   string
	X, Y   float64
	X2, Y2 float64 // line end point
	W, H   float64 // rect size
	R      float64 // circle radius
	Font   TextStyle
	Stroke LineStyle
	Fill   FillStyle
}

func (c Command) String() string {
	switch c.Op {
	case OpText:
		return fmt.Sprintf("text %q at (%.1f, %.1f) size %.0f %s", c.Text, c.X, c.Y, c.Font.Size, c.Font.Align)
	case OpLine:
		return fmt.Sprintf("line (%.1f, %.1f)-(%.1f, %.1f)", c.X, c.Y, c.X2, c.Y2)
	case OpRect:
		return fmt.Sprintf("rect (%.1f, %.1f) %.1fx%.1f", c.X, c.Y, c.W, c.H)
	default:
		return fmt.Sprintf("circle (%.1f, %.1f) r=%.1f", c.X, c.Y, c.R)
	}
}

// Recorder is an in-memory Surface. It keeps every command grouped by page.
type Recorder struct {
	width, height float64
	pages         [][]Command
}

// NewRecorder creates a recorder with the given surface size
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) DrawText(text string, x, y float64, style TextStyle) {
	r.add(Command{Op: OpText, Text: text, X: x, Y: y, Font: style})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, style LineStyle) {
	r.add(Command{Op: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Stroke: style})
}

func (r *Recorder) DrawRect(x, y, w, h float64, style LineStyle) {
	r.add(Command{Op: OpRect, X: x, Y: y, W: w, H: h, Stroke: style})
}

func (r *Recorder) DrawCircle(x, y, radius float64, style FillStyle) {
	r.add(Command{Op: OpCircle, X: x, Y: y, R: radius, Fill: style})
}

func (r *Recorder) NewPage() {
	r.pages = append(r.pages, nil)
}

func (r *Recorder) Size() (float64, float64) {
	return r.width, r.height
}

// PageCount returns the number of pages started so far
func (r *Recorder) PageCount() int {
	return len(r.pages)
}

// Page returns the commands recorded on page i (0-based)
func (r *Recorder) Page(i int) []Command {
	return r.pages[i]
}

// CommandCount returns the total number of recorded commands
func (r *Recorder) CommandCount() int {
	n := 0
	for _, page := range r.pages {
		n += len(page)
	}
	return n
}

// Texts returns the strings drawn on page i in drawing order
func (r *Recorder) Texts(i int) []string {
	var texts []string
	for _, c := range r.pages[i] {
		if c.Op == OpText {
			texts = append(texts, c.Text)
		}
	}
	return texts
}

func (r *Recorder) add(c Command) {
	if len(r.pages) == 0 {
		// drawing before the first NewPage lands on page one, like a fresh PDF
		r.pages = append(r.pages, nil)
	}
	last := len(r.pages) - 1
	r.pages[last] = append(r.pages[last], c)
}
