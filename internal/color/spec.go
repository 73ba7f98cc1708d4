package color

import (
	"fmt"
	"math"
)

// Spec is a Munsell color specification. A Spec whose Family is zero is a
// neutral and carries only Value.
type Spec struct {
	Hue    float64 // hue number in (0, 10]
	Family Family
	Value  float64
	Chroma float64
}

// Neutral returns the achromatic specification N value/.
func Neutral(value float64) Spec {
	return Spec{Value: value}
}

// Chromatic returns a chromatic specification with its hue normalised into
// (0, 10], so 0YR is stored as 10R.
func Chromatic(hue float64, f Family, value, chroma float64) Spec {
	hue, f = NormalizeHue(hue, f)
	return Spec{Hue: hue, Family: f, Value: value, Chroma: chroma}
}

// IsNeutral reports whether s is achromatic.
func (s Spec) IsNeutral() bool {
	return s.Family == 0
}

// ASTMHue returns the hue on the continuous (0, 100] scale.
func (s Spec) ASTMHue() float64 {
	return ASTMHue(s.Hue, s.Family)
}

// Validate checks that s is a well-formed specification.
func (s Spec) Validate() error {
	if !isFinite(s.Value) || s.Value < 0 || s.Value > 10 {
		return fmt.Errorf("value %v outside [0, 10]", s.Value)
	}
	if s.IsNeutral() {
		return nil
	}
	if !s.Family.Valid() {
		return fmt.Errorf("invalid hue family code %d", int(s.Family))
	}
	if !isFinite(s.Hue) || s.Hue <= 0 || s.Hue > 10 {
		return fmt.Errorf("hue number %v outside (0, 10]", s.Hue)
	}
	if !isFinite(s.Chroma) || s.Chroma < 0 {
		return fmt.Errorf("chroma %v must be a non-negative number", s.Chroma)
	}
	return nil
}

// Flat is the numerical form [hue, value, chroma, code]. Neutrals use code
// 0 with zero hue and chroma.
type Flat [4]float64

// Flat converts s to its numerical form.
func (s Spec) Flat() Flat {
	if s.IsNeutral() {
		return Flat{0, s.Value, 0, 0}
	}
	return Flat{s.Hue, s.Value, s.Chroma, float64(s.Family)}
}

// FromFlat converts the numerical form back to a Spec.
func FromFlat(f Flat) (Spec, error) {
	hue, value, chroma, code := f[0], f[1], f[2], f[3]
	if code == 0 {
		s := Neutral(value)
		return s, s.Validate()
	}
	if code != math.Trunc(code) || !Family(code).Valid() {
		return Spec{}, fmt.Errorf("invalid hue family code %v", code)
	}
	s := Chromatic(hue, Family(code), value, chroma)
	return s, s.Validate()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
