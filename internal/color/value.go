package color

import "math"

// ASTM D1535 quintic coefficients, lowest power first. Y is on the 0-100 scale.
var astmCoefficients = [...]float64{1.1914, -0.22533, 0.23352, -0.020484, 0.00081939}

// valueTolerance bounds |Y(v) - Y| on the 0-100 scale when solving for v.
const valueTolerance = 1e-10

// LuminanceFromValue evaluates the ASTM D1535 polynomial and returns the
// relative luminance Y in [0, 1] for Munsell value v.
func LuminanceFromValue(v float64) float64 {
	return astmY(v) / 100
}

// astmY is the polynomial in Horner form on the 0-100 scale.
func astmY(v float64) float64 {
	c := astmCoefficients
	return v * (c[0] + v*(c[1]+v*(c[2]+v*(c[3]+v*c[4]))))
}

// astmSlope is dY/dv on the 0-100 scale.
func astmSlope(v float64) float64 {
	c := astmCoefficients
	return c[0] + v*(2*c[1]+v*(3*c[2]+v*(4*c[3]+v*5*c[4])))
}

// ValueFromLuminance inverts LuminanceFromValue for Y in [0, 1]. Inputs
// outside the range clamp to 0 or 10. The polynomial is monotone on
// [0, 10], so a bisection phase followed by safeguarded Newton steps always
// converges.
func ValueFromLuminance(y float64) float64 {
	target := y * 100
	if !(target > 0) {
		return 0
	}
	if target >= astmY(10) {
		return 10
	}

	lo, hi := 0.0, 10.0
	for range 24 {
		mid := (lo + hi) / 2
		if astmY(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}

	v := (lo + hi) / 2
	for range 50 {
		f := astmY(v) - target
		if math.Abs(f) < valueTolerance {
			break
		}
		if f < 0 {
			lo = v
		} else {
			hi = v
		}
		next := v - f/astmSlope(v)
		if next <= lo || next >= hi {
			next = (lo + hi) / 2
		}
		v = next
	}
	return v
}
