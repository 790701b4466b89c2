package pdfsurface

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/username/planner/internal/render"
	"go.uber.org/zap"
)

const fontFamily = "Helvetica"

// paper names as fpdf expects them, keyed by lower-case config name
var papers = map[string]string{
	"letter": "Letter",
	"legal":  "Legal",
	"a4":     "A4",
	"a5":     "A5",
}

// KnownPaper reports whether name is a supported paper size
func KnownPaper(name string) bool {
	_, ok := papers[strings.ToLower(name)]
	return ok
}

// Options configure a new PDF surface
type Options struct {
	Paper     string // letter, legal, a4 or a5
	Landscape bool
	Title     string
	Author    string
	Creator   string
}

// Surface draws onto an in-memory PDF document in point units
type Surface struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
	logger    *zap.Logger
	pages     int
}

// New creates an empty document; pages are added with NewPage
func New(opts Options, logger *zap.Logger) (*Surface, error) {
	size, ok := papers[strings.ToLower(opts.Paper)]
	if !ok {
		return nil, newSurfaceError("New", fmt.Errorf("%w: %q", ErrUnknownPaper, opts.Paper))
	}

	orientation := "P"
	if opts.Landscape {
		orientation = "L"
	}

	pdf := fpdf.New(orientation, "pt", size, "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont(fontFamily, "", 12)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	if opts.Author != "" {
		pdf.SetAuthor(opts.Author, true)
	}
	if opts.Creator != "" {
		pdf.SetCreator(opts.Creator, true)
	}

	s := &Surface{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		logger:    logger,
	}

	w, h := s.Size()
	logger.Debug("PDF surface created",
		zap.String("paper", size),
		zap.String("orientation", orientation),
		zap.Float64("width_pt", w),
		zap.Float64("height_pt", h))

	return s, nil
}

func (s *Surface) DrawText(text string, x, y float64, style render.TextStyle) {
	s.pdf.SetFontSize(style.Size)
	text = s.translate(text)

	switch style.Align {
	case render.AlignCenter:
		x -= s.pdf.GetStringWidth(text) / 2
	case render.AlignRight:
		x -= s.pdf.GetStringWidth(text)
	}
	s.pdf.Text(x, y, text)
}

func (s *Surface) DrawLine(x1, y1, x2, y2 float64, style render.LineStyle) {
	s.stroke(style)
	s.pdf.Line(x1, y1, x2, y2)
}

func (s *Surface) DrawRect(x, y, w, h float64, style render.LineStyle) {
	s.stroke(style)
	s.pdf.Rect(x, y, w, h, "D")
}

func (s *Surface) DrawCircle(x, y, r float64, style render.FillStyle) {
	if style == render.Filled {
		s.pdf.SetFillColor(0, 0, 0)
		s.pdf.Circle(x, y, r, "F")
		return
	}
	s.pdf.Circle(x, y, r, "D")
}

func (s *Surface) NewPage() {
	s.pdf.AddPage()
	s.pages++
}

func (s *Surface) Size() (float64, float64) {
	return s.pdf.GetPageSize()
}

// PageCount returns the number of pages added so far
func (s *Surface) PageCount() int {
	return s.pages
}

func (s *Surface) stroke(style render.LineStyle) {
	s.pdf.SetLineWidth(style.Width)
	s.pdf.SetDrawColor(style.Gray, style.Gray, style.Gray)
}

// Write serialises the finished document to w
func (s *Surface) Write(w io.Writer) error {
	if s.pdf.Err() {
		return newSurfaceError("Write", fmt.Errorf("%w: %v", ErrRender, s.pdf.Error()))
	}
	if err := s.pdf.Output(w); err != nil {
		return newSurfaceError("Write", err)
	}
	return nil
}

// Save writes the document to path. The file only appears once it is complete:
// the bytes go to a temporary file in the same directory which is then renamed.
func (s *Surface) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newSurfaceError("Save", fmt.Errorf("%w: %v", ErrSave, err))
	}

	tmp, err := os.CreateTemp(dir, ".planner-*.pdf")
	if err != nil {
		return newSurfaceError("Save", fmt.Errorf("%w: %v", ErrSave, err))
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := s.Write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return newSurfaceError("Save", fmt.Errorf("%w: %v", ErrSave, err))
	}
	if err := os.Rename(tmpName, path); err != nil {
		return newSurfaceError("Save", fmt.Errorf("%w: %v", ErrSave, err))
	}

	s.logger.Info("PDF saved",
		zap.String("file", path),
		zap.Int("pages", s.pages))

	return nil
}
