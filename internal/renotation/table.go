// Package renotation holds the Munsell renotation grid: xyY coordinates under
// Illuminant C for hue numbers 2.5, 5, 7.5 and 10 of every family, integer
// values 1 through 9 and even chromas.
package renotation

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/jsvensson/munsell/internal/color"
)

// Value rows present in the grid.
const (
	MinValue = 1
	MaxValue = 9
)

// Row is one renotation grid point.
type Row struct {
	Hue    float64 // 2.5, 5, 7.5 or 10
	Family color.Family
	Value  int
	Chroma int // even, >= 2
	X, Y   float64
	Lum    float64 // relative luminance in [0, 1]
}

// Spec returns the grid point as a Munsell specification.
func (r Row) Spec() color.Spec {
	return color.Chromatic(r.Hue, r.Family, float64(r.Value), float64(r.Chroma))
}

// XYY returns the tabulated coordinates.
func (r Row) XYY() color.XYY {
	return color.XYY{X: r.X, Y: r.Y, Luminance: r.Lum}
}

// wedge identifies one hue of one value row: the unit the envelope is kept for.
type wedge struct {
	hue    int // grid index 1..4 for hue numbers 2.5..10
	family color.Family
	value  int
}

type point struct {
	wedge
	chroma int
}

// Table is an immutable, in-memory renotation dataset. It is safe for
// concurrent use.
type Table struct {
	rows   []Row
	points map[point]color.XYY
	max    map[wedge]int
}

// New validates rows and builds a Table. Duplicate grid points are rejected.
func New(rows []Row) (*Table, error) {
	t := &Table{
		rows:   make([]Row, 0, len(rows)),
		points: make(map[point]color.XYY, len(rows)),
		max:    make(map[wedge]int),
	}
	for i, r := range rows {
		if err := validateRow(r); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		p := point{wedge: wedge{hue: gridIndex(r.Hue), family: r.Family, value: r.Value}, chroma: r.Chroma}
		if _, dup := t.points[p]; dup {
			return nil, fmt.Errorf("row %d: duplicate grid point %v%s %d/%d", i+1, r.Hue, r.Family, r.Value, r.Chroma)
		}
		t.points[p] = r.XYY()
		t.max[p.wedge] = max(t.max[p.wedge], r.Chroma)
		t.rows = append(t.rows, r)
	}
	if len(t.rows) == 0 {
		return nil, fmt.Errorf("renotation table is empty")
	}
	slices.SortFunc(t.rows, compareRows)
	return t, nil
}

func compareRows(a, b Row) int {
	return cmp.Or(
		cmp.Compare(a.Family, b.Family),
		cmp.Compare(a.Hue, b.Hue),
		cmp.Compare(a.Value, b.Value),
		cmp.Compare(a.Chroma, b.Chroma),
	)
}

func validateRow(r Row) error {
	if gridIndex(r.Hue) == 0 {
		return fmt.Errorf("hue number %v is not a grid hue (2.5, 5, 7.5, 10)", r.Hue)
	}
	if !r.Family.Valid() {
		return fmt.Errorf("invalid hue family code %d", int(r.Family))
	}
	if r.Value < MinValue || r.Value > MaxValue {
		return fmt.Errorf("value %d outside %d..%d", r.Value, MinValue, MaxValue)
	}
	if r.Chroma < 2 || r.Chroma%2 != 0 {
		return fmt.Errorf("chroma %d is not an even renotation chroma", r.Chroma)
	}
	if r.X < 0 || r.X > 1 || r.Y <= 0 || r.Y > 1 {
		return fmt.Errorf("chromaticity (%v, %v) outside the unit square", r.X, r.Y)
	}
	return nil
}

// gridIndex maps a grid hue number to 1..4, or 0 if it is not on the grid.
func gridIndex(hue float64) int {
	i := math.Round(hue / 2.5)
	if i < 1 || i > 4 || math.Abs(hue-i*2.5) > 1e-9 {
		return 0
	}
	return int(i)
}

// Len returns the number of grid points.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the grid points ordered by family, hue, value and chroma.
// The returned slice must not be modified.
func (t *Table) Rows() []Row {
	return t.rows
}

// Lookup returns the coordinates of a grid point, or false when the point is
// absent. The dataset is sparse at the high-chroma periphery.
func (t *Table) Lookup(hue float64, f color.Family, value, chroma int) (color.XYY, bool) {
	idx := gridIndex(hue)
	if idx == 0 {
		return color.XYY{}, false
	}
	xyY, ok := t.points[point{wedge: wedge{hue: idx, family: f, value: value}, chroma: chroma}]
	return xyY, ok
}

// GridMaxChroma returns the largest chroma tabulated for a grid hue and value
// row, or 0 when the wedge has no data.
func (t *Table) GridMaxChroma(hue float64, f color.Family, value int) int {
	idx := gridIndex(hue)
	if idx == 0 {
		return 0
	}
	return t.max[wedge{hue: idx, family: f, value: value}]
}

// MaxChroma returns the renotation envelope for any hue of a value row.
// Hues between grid numbers interpolate linearly between the two bracketing
// wedges; the bracket wraps across family boundaries.
func (t *Table) MaxChroma(hue float64, value int, f color.Family) float64 {
	return t.maxChromaASTM(color.ASTMHue(hue, f), value)
}

func (t *Table) maxChromaASTM(h float64, value int) float64 {
	lo := 2.5 * math.Floor(h/2.5)
	frac := (h - lo) / 2.5
	loHue, loFamily := color.HueFromASTM(lo)
	m0 := float64(t.GridMaxChroma(loHue, loFamily, value))
	if frac < 1e-12 {
		return m0
	}
	hiHue, hiFamily := color.HueFromASTM(lo + 2.5)
	m1 := float64(t.GridMaxChroma(hiHue, hiFamily, value))
	return m0 + frac*(m1-m0)
}

// MaxChromaAt extends MaxChroma to fractional values by interpolating
// linearly between the bracketing value rows. Values outside the grid use
// the nearest row.
func (t *Table) MaxChromaAt(hue, value float64, f color.Family) float64 {
	h := color.ASTMHue(hue, f)
	lo, hi, frac := ValueRows(value)
	m0 := t.maxChromaASTM(h, lo)
	if lo == hi {
		return m0
	}
	return m0 + frac*(t.maxChromaASTM(h, hi)-m0)
}

// ValueRows brackets value by grid rows clamped to [MinValue, MaxValue].
// frac is the position of value between the rows, 0 when they coincide.
func ValueRows(value float64) (lo, hi int, frac float64) {
	lo = int(math.Floor(value))
	hi = int(math.Ceil(value))
	lo = max(MinValue, min(MaxValue, lo))
	hi = max(MinValue, min(MaxValue, hi))
	if lo == hi {
		return lo, hi, 0
	}
	return lo, hi, value - float64(lo)
}
