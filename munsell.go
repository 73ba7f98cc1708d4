// Package munsell converts sRGB colors to Munsell notation using the
// renotation data under Illuminant C.
//
//	conv, err := munsell.Open("real.dat", munsell.DefaultOptions())
//	if err != nil { ... }
//	spec, err := conv.SRGBToMunsell(255, 0, 0)
//	fmt.Println(munsell.Format(spec)) // 7.9R 5.2/20.5
package munsell

import (
	"github.com/jsvensson/munsell/internal/color"
	"github.com/jsvensson/munsell/internal/engine"
	"github.com/jsvensson/munsell/internal/renotation"
)

type (
	// Spec is a Munsell specification: Neutral(value) when Family is zero,
	// otherwise hue number, family, value and chroma.
	Spec = color.Spec
	// Family is one of the ten hue families R through RP.
	Family = color.Family
	// XYY is a CIE xyY triple under Illuminant C.
	XYY = color.XYY
	// Color is an 8-bit sRGB color.
	Color = color.Color
	// Options are the solver calibration constants.
	Options = engine.Options
	// Step is one traced solver iteration.
	Step = engine.Step
	// Tracer receives solver steps.
	Tracer = engine.Tracer
	// TracerFunc adapts a function to a Tracer.
	TracerFunc = engine.TracerFunc
	// Error carries the kind and solver state of a failed conversion.
	Error = engine.Error
	// Table is a loaded renotation dataset.
	Table = renotation.Table
)

// Error kinds, for use with errors.Is.
var (
	ErrInvalidInput   = engine.ErrInvalidInput
	ErrOutOfGamut     = engine.ErrOutOfGamut
	ErrNonConvergence = engine.ErrNonConvergence
	ErrDataMissing    = engine.ErrDataMissing
)

// DefaultOptions returns the standard solver calibration.
func DefaultOptions() Options {
	return engine.DefaultOptions()
}

// Converter converts between sRGB, xyY and Munsell specifications. It is
// immutable and safe for concurrent use.
type Converter struct {
	engine *engine.Engine
}

// New returns a Converter over an already loaded renotation table.
func New(table *Table, opts Options) (*Converter, error) {
	e, err := engine.New(table, opts)
	if err != nil {
		return nil, err
	}
	return &Converter{engine: e}, nil
}

// Open loads the renotation dataset at path and returns a Converter over it.
func Open(path string, opts Options) (*Converter, error) {
	table, err := renotation.Load(path)
	if err != nil {
		return nil, err
	}
	return New(table, opts)
}

// SRGBToMunsell converts an 8-bit sRGB color.
func (c *Converter) SRGBToMunsell(r, g, b uint8) (Spec, error) {
	return c.engine.XYYToSpec(color.SRGBToXYY(Color{R: r, G: g, B: b}))
}

// ColorToMunsell is SRGBToMunsell for a Color.
func (c *Converter) ColorToMunsell(col Color) (Spec, error) {
	return c.SRGBToMunsell(col.R, col.G, col.B)
}

// XYYToSpec converts an xyY triple under Illuminant C.
func (c *Converter) XYYToSpec(v XYY) (Spec, error) {
	return c.engine.XYYToSpec(v)
}

// Trace is XYYToSpec reporting every solver iteration to tr.
func (c *Converter) Trace(v XYY, tr Tracer) (Spec, error) {
	return c.engine.Solve(v, tr)
}

// SpecToXYY returns the xyY coordinates of a specification.
func (c *Converter) SpecToXYY(s Spec) (XYY, error) {
	return c.engine.SpecToXYY(s)
}

// SpecToSRGB returns the sRGB color of a specification. inGamut is false when
// the color had to be clipped into the sRGB cube.
func (c *Converter) SpecToSRGB(s Spec) (col Color, inGamut bool, err error) {
	v, err := c.engine.SpecToXYY(s)
	if err != nil {
		return Color{}, false, err
	}
	col, inGamut = color.XYYToSRGB(v)
	return col, inGamut, nil
}

// MaxChroma returns the renotation envelope for a hue and value.
func (c *Converter) MaxChroma(hue float64, f Family, value float64) float64 {
	return c.engine.Table().MaxChromaAt(hue, value, f)
}

// SRGBToXYY converts an 8-bit sRGB color to xyY under Illuminant C.
func SRGBToXYY(col Color) XYY {
	return color.SRGBToXYY(col)
}

// Format renders a specification in canonical notation, e.g. "7.9R 5.2/20.5"
// or "N5.2/".
func Format(s Spec) string {
	return color.Format(s)
}

// ParseNotation parses Munsell notation.
func ParseNotation(s string) (Spec, error) {
	return color.ParseNotation(s)
}

// ParseColor parses a hex ("#ff0000") or rgb ("255,0,0") color.
func ParseColor(s string) (Color, error) {
	return color.Parse(s)
}
