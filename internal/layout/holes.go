package layout

const (
	holeSpacing = 4.25 * PointsPerInch
	guideRadius = 2.0
	guideTick   = 6.0
)

// HoleGuide is a punch mark: a dot with a crosshair through it
type HoleGuide struct {
	Center Point
	Radius float64
	Ticks  [2]Line
}

// HoleGuides returns the punch marks centred in the hole strip at the page centre
// and 4.25" above and below it. Marks that would fall off a short page are omitted.
func (pl PageLayout) HoleGuides() []HoleGuide {
	x := pl.HoleStrip().CenterX()
	mid := pl.Height / 2
	reach := guideRadius + guideTick

	var guides []HoleGuide
	for _, y := range []float64{mid - holeSpacing, mid, mid + holeSpacing} {
		if y-reach < 0 || y+reach > pl.Height {
			continue
		}
		guides = append(guides, HoleGuide{
			Center: Point{X: x, Y: y},
			Radius: guideRadius,
			Ticks: [2]Line{
				{X1: x - reach, Y1: y, X2: x + reach, Y2: y},
				{X1: x, Y1: y - reach, X2: x, Y2: y + reach},
			},
		})
	}
	return guides
}
