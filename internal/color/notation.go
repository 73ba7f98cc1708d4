package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	neutralNotation   = regexp.MustCompile(`^N\s*([0-9]*\.?[0-9]+)\s*(?:/\s*(?:0*\.?0*)?)?$`)
	chromaticNotation = regexp.MustCompile(`^([0-9]*\.?[0-9]+)\s*([A-Z]{1,2})\s+([0-9]*\.?[0-9]+)\s*/\s*([0-9]*\.?[0-9]+)$`)
)

// Format renders s in canonical notation: "7.9R 5.2/20.5" for chromatic
// colors and "N5.2/" for neutrals.
func Format(s Spec) string {
	if s.IsNeutral() {
		return fmt.Sprintf("N%.1f/", s.Value)
	}
	return fmt.Sprintf("%.1f%s %.1f/%.1f", s.Hue, s.Family, s.Value, s.Chroma)
}

// ParseNotation parses Munsell notation such as "5R 4/14", "2.5 YR 6.5/8",
// "N5/" or "N 5.2/". A zero hue number is carried into the previous family.
func ParseNotation(s string) (Spec, error) {
	text := strings.ToUpper(strings.TrimSpace(s))

	if m := neutralNotation.FindStringSubmatch(text); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Spec{}, fmt.Errorf("invalid notation %q: %w", s, err)
		}
		spec := Neutral(v)
		if err := spec.Validate(); err != nil {
			return Spec{}, fmt.Errorf("invalid notation %q: %w", s, err)
		}
		return spec, nil
	}

	m := chromaticNotation.FindStringSubmatch(text)
	if m == nil {
		return Spec{}, fmt.Errorf("invalid notation %q: want \"<hue><family> <value>/<chroma>\" or \"N<value>/\"", s)
	}
	fam, err := ParseFamily(m[2])
	if err != nil {
		return Spec{}, fmt.Errorf("invalid notation %q: %w", s, err)
	}
	var nums [3]float64
	for i, field := range []string{m[1], m[3], m[4]} {
		nums[i], err = strconv.ParseFloat(field, 64)
		if err != nil {
			return Spec{}, fmt.Errorf("invalid notation %q: %w", s, err)
		}
	}
	hue, value, chroma := nums[0], nums[1], nums[2]
	if hue > 10 {
		return Spec{}, fmt.Errorf("invalid notation %q: hue number %v outside [0, 10]", s, hue)
	}

	spec := Chromatic(hue, fam, value, chroma)
	if chroma == 0 {
		spec = Neutral(value)
	}
	if err := spec.Validate(); err != nil {
		return Spec{}, fmt.Errorf("invalid notation %q: %w", s, err)
	}
	return spec, nil
}
