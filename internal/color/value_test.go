package color

import (
	"math"
	"testing"
)

func TestLuminanceFromValue(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{0, 0},
		{1, 0.0117992539},
		{2, 0.0304811648},
		{5, 0.1927184375},
		{9, 0.7669558611},
		{10, 1},
	}

	for _, tt := range tests {
		got := LuminanceFromValue(tt.value)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("LuminanceFromValue(%v) = %.12f, want %.12f", tt.value, got, tt.want)
		}
	}
}

func TestValueFromLuminance_RoundTrip(t *testing.T) {
	for v := 0.0; v <= 10; v += 0.0625 {
		y := LuminanceFromValue(v)
		got := ValueFromLuminance(y)
		if math.Abs(got-v) > 1e-9 {
			t.Errorf("ValueFromLuminance(Y(%v)) = %v", v, got)
		}
		if back := LuminanceFromValue(got); math.Abs(back-y) > 1e-11 {
			t.Errorf("Y(ValueFromLuminance(%v)) = %v, residual %g", y, back, back-y)
		}
	}
}

func TestValueFromLuminance_Clamps(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"zero", 0, 0},
		{"negative", -0.5, 0},
		{"NaN", math.NaN(), 0},
		{"white", 1, 10},
		{"brighter than white", 1.2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValueFromLuminance(tt.y)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ValueFromLuminance(%v) = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}

func TestValueFromLuminance_Monotone(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 1000; i++ {
		v := ValueFromLuminance(float64(i) / 1000)
		if v < prev {
			t.Fatalf("ValueFromLuminance not monotone at Y=%v: %v < %v", float64(i)/1000, v, prev)
		}
		prev = v
	}
}
