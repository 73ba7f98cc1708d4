package color

import (
	"math"
	"testing"
)

func TestSRGBToXYY_Greys(t *testing.T) {
	for _, v := range []uint8{1, 64, 128, 200, 255} {
		got := SRGBToXYY(Color{v, v, v})
		if math.Abs(got.X-IlluminantCx) > 1e-9 || math.Abs(got.Y-IlluminantCy) > 1e-9 {
			t.Errorf("grey %d chromaticity = (%v, %v), want Illuminant C", v, got.X, got.Y)
		}
	}

	white := SRGBToXYY(Color{255, 255, 255})
	if math.Abs(white.Luminance-1) > 1e-9 {
		t.Errorf("white luminance = %v, want 1", white.Luminance)
	}

	mid := SRGBToXYY(Color{128, 128, 128})
	if math.Abs(mid.Luminance-0.2158605) > 1e-6 {
		t.Errorf("mid grey luminance = %v, want 0.2158605", mid.Luminance)
	}
}

func TestSRGBToXYY_Black(t *testing.T) {
	got := SRGBToXYY(Color{0, 0, 0})
	if got.Luminance != 0 {
		t.Errorf("black luminance = %v, want 0", got.Luminance)
	}
	if math.Abs(got.X-IlluminantCx) > 1e-9 || math.Abs(got.Y-IlluminantCy) > 1e-9 {
		t.Errorf("black chromaticity = (%v, %v), want Illuminant C", got.X, got.Y)
	}
}

func TestSRGBToXYY_Primaries(t *testing.T) {
	tests := []struct {
		name    string
		color   Color
		x, y, l float64
	}{
		{"red", Color{255, 0, 0}, 0.639612, 0.328132, 0.214534},
		{"green", Color{0, 255, 0}, 0.305694, 0.589545, 0.709036},
		{"blue", Color{0, 0, 255}, 0.149159, 0.058501, 0.076429},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToXYY(tt.color)
			if math.Abs(got.X-tt.x) > 1e-4 || math.Abs(got.Y-tt.y) > 1e-4 || math.Abs(got.Luminance-tt.l) > 1e-4 {
				t.Errorf("SRGBToXYY(%v) = %+v, want (%v, %v, %v)", tt.color, got, tt.x, tt.y, tt.l)
			}
		})
	}
}

func TestXYYToSRGB_RoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 51 {
			for b := 0; b < 256; b += 85 {
				c := Color{uint8(r), uint8(g), uint8(b)}
				got, inGamut := XYYToSRGB(SRGBToXYY(c))
				if !inGamut {
					t.Errorf("%s reported out of gamut", c.Hex())
				}
				if got != c {
					t.Errorf("round trip %s -> %s", c.Hex(), got.Hex())
				}
			}
		}
	}
}

func TestXYYToSRGB_OutOfGamut(t *testing.T) {
	// Spectral green is far outside sRGB.
	got, inGamut := XYYToSRGB(XYY{X: 0.1, Y: 0.8, Luminance: 0.5})
	if inGamut {
		t.Errorf("XYYToSRGB of spectral green reported in gamut (%s)", got.Hex())
	}
}
