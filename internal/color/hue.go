package color

import (
	"fmt"
	"math"
	"strings"
)

// Family is a Munsell hue family. The zero value is not a family; a Spec
// with a zero Family is a neutral.
type Family int

// The ten hue families in cyclic order. The numeric value is the family code.
const (
	Red Family = iota + 1
	YellowRed
	Yellow
	GreenYellow
	Green
	BlueGreen
	Blue
	PurpleBlue
	Purple
	RedPurple
)

// NumFamilies is the length of the hue cycle.
const NumFamilies = 10

var familyNames = [...]string{"", "R", "YR", "Y", "GY", "G", "BG", "B", "PB", "P", "RP"}

// String returns the family abbreviation, e.g. "YR".
func (f Family) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// Valid reports whether f is one of the ten hue families.
func (f Family) Valid() bool {
	return f >= Red && f <= RedPurple
}

// Code returns the family code in 1..10.
func (f Family) Code() int {
	return int(f)
}

// Next returns the following family, wrapping RP to R.
func (f Family) Next() Family {
	return f%NumFamilies + 1
}

// Prev returns the preceding family, wrapping R to RP.
func (f Family) Prev() Family {
	return (f+NumFamilies-2)%NumFamilies + 1
}

// ParseFamily parses a family abbreviation. Matching is case-insensitive.
func ParseFamily(s string) (Family, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	for i := Red; i <= RedPurple; i++ {
		if familyNames[i] == u {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown hue family %q", s)
}

// hueEpsilon absorbs rounding when a hue lands on a family boundary.
const hueEpsilon = 1e-10

// GridHues are the hue numbers tabulated by the renotation data.
var GridHues = [...]float64{2.5, 5, 7.5, 10}

// ASTMHue places a hue on the continuous ASTM D1535 scale (0, 100], where
// R spans (0, 10] and 10RP is 100.
func ASTMHue(number float64, f Family) float64 {
	return float64(f-1)*10 + number
}

// HueFromASTM splits a continuous hue back into hue number and family. The
// input is wrapped into (0, 100]. A hue on a family boundary resolves to the
// lower family, so 10 is 10R rather than 0YR, and 0 is 10RP.
func HueFromASTM(h float64) (float64, Family) {
	h = math.Mod(h, 100)
	if h < 0 {
		h += 100
	}
	if h <= hueEpsilon {
		return 10, RedPurple
	}
	code := int(math.Ceil((h - hueEpsilon) / 10))
	code = max(1, min(NumFamilies, code))
	number := h - float64(code-1)*10
	number = max(hueEpsilon, min(10, number))
	return number, Family(code)
}

// HueAngle maps a hue to degrees in [0, 360). Each family spans 36 degrees;
// 10RP sits at 0 and 10R at 36. Angles increase with hue, following the
// ASTM continuous scale rather than the 5R-at-zero, decreasing convention.
func HueAngle(number float64, f Family) float64 {
	a := math.Mod(ASTMHue(number, f)*3.6, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// AngleToHue is the inverse of HueAngle.
func AngleToHue(angle float64) (float64, Family) {
	return HueFromASTM(angle / 3.6)
}

// NormalizeHue carries a hue number outside (0, 10] into the neighbouring
// family, e.g. 0YR becomes 10R and 12.5R becomes 2.5YR.
func NormalizeHue(number float64, f Family) (float64, Family) {
	if number > 0 && number <= 10 {
		return number, f
	}
	return HueFromASTM(ASTMHue(number, f))
}
