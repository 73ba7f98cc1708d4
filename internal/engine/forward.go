package engine

import (
	"fmt"
	"math"

	"github.com/jsvensson/munsell/internal/color"
	"github.com/jsvensson/munsell/internal/renotation"
)

// gridSnap is the fractional distance to a grid line below which the grid
// point is used directly.
const gridSnap = 1e-12

// SpecToXYY returns the xyY coordinates of a Munsell specification.
// Specifications between grid points are interpolated; chromas beyond the
// renotation envelope are extrapolated from the two outermost rings.
func (e *Engine) SpecToXYY(s color.Spec) (color.XYY, error) {
	if err := s.Validate(); err != nil {
		return color.XYY{}, specError(ErrInvalidInput, s, err)
	}
	lum := color.LuminanceFromValue(s.Value)
	if s.IsNeutral() || s.Chroma < e.opts.ThresholdChroma {
		return color.XYY{X: color.IlluminantCx, Y: color.IlluminantCy, Luminance: lum}, nil
	}

	x, y, err := e.xy(s.ASTMHue(), s.Value, s.Chroma)
	if err != nil {
		return color.XYY{}, specError(ErrDataMissing, s, err)
	}
	return color.XYY{X: x, Y: y, Luminance: lum}, nil
}

// xy interpolates the chromaticity at continuous hue h. Value rows are
// blended by luminance rather than by value.
func (e *Engine) xy(h, value, chroma float64) (x, y float64, err error) {
	lo, hi, _ := renotation.ValueRows(value)
	x0, y0, err := e.rowXY(h, lo, chroma)
	if err != nil || lo == hi {
		return x0, y0, err
	}
	x1, y1, err := e.rowXY(h, hi, chroma)
	if err != nil {
		return 0, 0, err
	}

	yLo := color.LuminanceFromValue(float64(lo))
	yHi := color.LuminanceFromValue(float64(hi))
	t := (color.LuminanceFromValue(value) - yLo) / (yHi - yLo)
	return lerp(x0, x1, t), lerp(y0, y1, t), nil
}

// rowXY blends the two even chroma rings bracketing chroma. Below chroma 2
// the inner ring is Illuminant C itself.
func (e *Engine) rowXY(h float64, value int, chroma float64) (x, y float64, err error) {
	cLo := 2 * math.Floor(chroma/2)
	if cLo > 0 && chroma-cLo < gridSnap {
		return e.ringXY(h, value, int(cLo))
	}

	x0, y0 := color.IlluminantCx, color.IlluminantCy
	if cLo > 0 {
		if x0, y0, err = e.ringXY(h, value, int(cLo)); err != nil {
			return 0, 0, err
		}
	}
	x1, y1, err := e.ringXY(h, value, int(cLo)+2)
	if err != nil {
		return 0, 0, err
	}
	t := (chroma - cLo) / 2
	return lerp(x0, x1, t), lerp(y0, y1, t), nil
}

// ringXY interpolates around one chroma ring of a value row. The angle
// around Illuminant C is linear in hue; the radius follows a monotone cubic
// through the bracketing wedges, with slopes taken from the next wedge on
// either side.
func (e *Engine) ringXY(h float64, value, chroma int) (x, y float64, err error) {
	lo := 2.5 * math.Floor(h/2.5)
	t := (h - lo) / 2.5
	if t < gridSnap {
		return e.gridXY(lo, value, chroma)
	}
	if t > 1-gridSnap {
		return e.gridXY(lo+2.5, value, chroma)
	}

	x0, y0, err := e.gridXY(lo, value, chroma)
	if err != nil {
		return 0, 0, err
	}
	x1, y1, err := e.gridXY(lo+2.5, value, chroma)
	if err != nil {
		return 0, 0, err
	}
	r0, p0 := polar(x0, y0)
	r1, p1 := polar(x1, y1)

	phi := p0 + t*wrap180(p1-p0)

	m0, m1 := r1-r0, r1-r0
	if xp, yp, err := e.gridXY(lo-2.5, value, chroma); err == nil {
		rp, _ := polar(xp, yp)
		m0 = (r1 - rp) / 2
	}
	if xn, yn, err := e.gridXY(lo+5, value, chroma); err == nil {
		rn, _ := polar(xn, yn)
		m1 = (rn - r0) / 2
	}
	rho := ovoid(r0, r1, m0, m1, t)

	x, y = cartesian(rho, phi)
	return x, y, nil
}

// gridXY returns a tabulated chromaticity for grid hue h (a multiple of 2.5
// on the continuous scale), extrapolating linearly past the wedge's highest
// ring.
func (e *Engine) gridXY(h float64, value, chroma int) (x, y float64, err error) {
	hue, f := color.HueFromASTM(h)
	if p, ok := e.table.Lookup(hue, f, value, chroma); ok {
		return p.X, p.Y, nil
	}

	top := e.table.GridMaxChroma(hue, f, value)
	if top == 0 || chroma < top {
		return 0, 0, fmt.Errorf("no renotation point %v%s %d/%d", hue, f, value, chroma)
	}

	outer, _ := e.table.Lookup(hue, f, value, top)
	innerX, innerY := color.IlluminantCx, color.IlluminantCy
	if top > 2 {
		inner, ok := e.table.Lookup(hue, f, value, top-2)
		if !ok {
			return 0, 0, fmt.Errorf("no renotation point %v%s %d/%d to extrapolate from", hue, f, value, top-2)
		}
		innerX, innerY = inner.X, inner.Y
	}
	t := float64(chroma-top) / 2
	return outer.X + t*(outer.X-innerX), outer.Y + t*(outer.Y-innerY), nil
}

// ovoid is a cubic Hermite interpolant on [0, 1] with Fritsch-Carlson
// limiting, so rho never overshoots the bracketing radii.
func ovoid(r0, r1, m0, m1, t float64) float64 {
	d := r1 - r0
	if d == 0 {
		m0, m1 = 0, 0
	} else {
		a, b := m0/d, m1/d
		if a < 0 {
			m0, a = 0, 0
		}
		if b < 0 {
			m1, b = 0, 0
		}
		if s := a*a + b*b; s > 9 {
			tau := 3 / math.Sqrt(s)
			m0, m1 = tau*a*d, tau*b*d
		}
	}

	t2 := t * t
	t3 := t2 * t
	return (2*t3-3*t2+1)*r0 + (t3-2*t2+t)*m0 + (-2*t3+3*t2)*r1 + (t3-t2)*m1
}

// polar returns the distance and angle in degrees of (x, y) around
// Illuminant C.
func polar(x, y float64) (rho, phi float64) {
	dx, dy := x-color.IlluminantCx, y-color.IlluminantCy
	return math.Hypot(dx, dy), math.Atan2(dy, dx) * 180 / math.Pi
}

func cartesian(rho, phi float64) (x, y float64) {
	sin, cos := math.Sincos(phi * math.Pi / 180)
	return color.IlluminantCx + rho*cos, color.IlluminantCy + rho*sin
}

// wrap180 wraps an angle difference into (-180, 180].
func wrap180(d float64) float64 {
	d = math.Mod(d, 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return d
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
