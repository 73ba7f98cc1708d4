package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Chromaticity of CIE Illuminant C, the white point of the renotation data.
const (
	IlluminantCx = 0.31006
	IlluminantCy = 0.31616
)

// XYY is a CIE xyY triple under Illuminant C. Luminance is relative, with
// the white of Illuminant C at 1.
type XYY struct {
	X, Y      float64
	Luminance float64
}

// whiteC is the XYZ of Illuminant C normalised to Y = 1.
var whiteC = [3]float64{
	IlluminantCx / IlluminantCy,
	1,
	(1 - IlluminantCx - IlluminantCy) / IlluminantCy,
}

type mat3 [3][3]float64

func (m mat3) mulVec(x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

func (m mat3) mul(n mat3) mat3 {
	var out mat3
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				out[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return out
}

func (m mat3) inverse() mat3 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	return mat3{
		{(e*i - f*h) / det, (c*h - b*i) / det, (b*f - c*e) / det},
		{(f*g - d*i) / det, (a*i - c*g) / det, (c*d - a*f) / det},
		{(d*h - e*g) / det, (b*g - a*h) / det, (a*e - b*d) / det},
	}
}

var bradford = mat3{
	{0.8951, 0.2664, -0.1614},
	{-0.7502, 1.7135, 0.0367},
	{0.0389, -0.0685, 1.0296},
}

// adaptation builds the Bradford transform taking src white to dst white.
func adaptation(src, dst [3]float64) mat3 {
	sl, sm, ss := bradford.mulVec(src[0], src[1], src[2])
	dl, dm, ds := bradford.mulVec(dst[0], dst[1], dst[2])
	scale := mat3{
		{dl / sl, 0, 0},
		{0, dm / sm, 0},
		{0, 0, ds / ss},
	}
	return bradford.inverse().mul(scale.mul(bradford))
}

// The source white is the sRGB matrix image of linear (1, 1, 1) rather than
// the rounded D65 constant, so that sRGB greys land exactly on Illuminant C.
var (
	whiteD65 = func() [3]float64 {
		x, y, z := colorful.LinearRgbToXyz(1, 1, 1)
		return [3]float64{x, y, z}
	}()
	d65ToC = adaptation(whiteD65, whiteC)
	cToD65 = d65ToC.inverse()
)

// SRGBToXYY runs the sRGB pipeline: gamma decode, linear RGB to XYZ under
// D65, Bradford adaptation to Illuminant C, XYZ to xyY. Black maps to the
// chromaticity of Illuminant C with zero luminance.
func SRGBToXYY(c Color) XYY {
	rgb := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	x, y, z := rgb.Xyz()
	x, y, z = d65ToC.mulVec(x, y, z)
	cx, cy, lum := colorful.XyzToXyyWhiteRef(x, y, z, whiteC)
	// Rounding can leave white a few ulps above 1.
	return XYY{X: cx, Y: cy, Luminance: min(lum, 1)}
}

// gamutTolerance is how far a linear channel may stray outside [0, 1]
// before the color counts as out of the sRGB gamut.
const gamutTolerance = 1e-6

// XYYToSRGB inverts SRGBToXYY. Channels outside the sRGB gamut are clipped;
// inGamut reports whether clipping was needed.
func XYYToSRGB(v XYY) (c Color, inGamut bool) {
	if v.Y <= 0 {
		return Color{}, v.Luminance <= 0
	}
	x, y, z := colorful.XyyToXyz(v.X, v.Y, v.Luminance)
	x, y, z = cToD65.mulVec(x, y, z)
	r, g, b := colorful.XyzToLinearRgb(x, y, z)

	inGamut = true
	for _, ch := range []float64{r, g, b} {
		if ch < -gamutTolerance || ch > 1+gamutTolerance {
			inGamut = false
		}
	}

	rgb := colorful.LinearRgb(clamp01(r), clamp01(g), clamp01(b))
	return Color{
		R: uint8(math.Round(clamp01(rgb.R) * 255)),
		G: uint8(math.Round(clamp01(rgb.G) * 255)),
		B: uint8(math.Round(clamp01(rgb.B) * 255)),
	}, inGamut
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
