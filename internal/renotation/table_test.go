package renotation

import (
	"math"
	"strings"
	"testing"

	"github.com/jsvensson/munsell/internal/color"
)

func testRows() []Row {
	return []Row{
		{Hue: 5, Family: color.Red, Value: 5, Chroma: 4, X: 0.38, Y: 0.31, Lum: 0.1977},
		{Hue: 5, Family: color.Red, Value: 5, Chroma: 2, X: 0.34, Y: 0.31, Lum: 0.1977},
		{Hue: 7.5, Family: color.Red, Value: 5, Chroma: 2, X: 0.345, Y: 0.315, Lum: 0.1977},
		{Hue: 10, Family: color.RedPurple, Value: 5, Chroma: 2, X: 0.33, Y: 0.30, Lum: 0.1977},
		{Hue: 10, Family: color.RedPurple, Value: 5, Chroma: 4, X: 0.35, Y: 0.29, Lum: 0.1977},
		{Hue: 10, Family: color.RedPurple, Value: 5, Chroma: 6, X: 0.37, Y: 0.28, Lum: 0.1977},
		{Hue: 5, Family: color.Red, Value: 6, Chroma: 2, X: 0.335, Y: 0.312, Lum: 0.2987},
		{Hue: 5, Family: color.Red, Value: 6, Chroma: 4, X: 0.36, Y: 0.31, Lum: 0.2987},
		{Hue: 5, Family: color.Red, Value: 6, Chroma: 6, X: 0.38, Y: 0.31, Lum: 0.2987},
		{Hue: 5, Family: color.Red, Value: 6, Chroma: 8, X: 0.40, Y: 0.31, Lum: 0.2987},
	}
}

func TestNew(t *testing.T) {
	table, err := New(testRows())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if table.Len() != 10 {
		t.Errorf("Len() = %d, want 10", table.Len())
	}

	rows := table.Rows()
	for i := 1; i < len(rows); i++ {
		if compareRows(rows[i-1], rows[i]) >= 0 {
			t.Errorf("Rows() not sorted at %d: %+v before %+v", i, rows[i-1], rows[i])
		}
	}
	if rows[0].Family != color.Red || rows[0].Hue != 5 || rows[0].Chroma != 2 {
		t.Errorf("first row = %+v, want 5R 5/2", rows[0])
	}
}

func TestNew_Errors(t *testing.T) {
	base := Row{Hue: 5, Family: color.Red, Value: 5, Chroma: 2, X: 0.34, Y: 0.31, Lum: 0.2}

	tests := []struct {
		name    string
		rows    []Row
		wantErr string
	}{
		{"empty", nil, "empty"},
		{"off-grid hue", []Row{{Hue: 3, Family: color.Red, Value: 5, Chroma: 2, X: 0.3, Y: 0.3}}, "grid hue"},
		{"zero family", []Row{{Hue: 5, Value: 5, Chroma: 2, X: 0.3, Y: 0.3}}, "family"},
		{"value 0", []Row{{Hue: 5, Family: color.Red, Value: 0, Chroma: 2, X: 0.3, Y: 0.3}}, "value"},
		{"value 10", []Row{{Hue: 5, Family: color.Red, Value: 10, Chroma: 2, X: 0.3, Y: 0.3}}, "value"},
		{"odd chroma", []Row{{Hue: 5, Family: color.Red, Value: 5, Chroma: 3, X: 0.3, Y: 0.3}}, "chroma"},
		{"zero chroma", []Row{{Hue: 5, Family: color.Red, Value: 5, Chroma: 0, X: 0.3, Y: 0.3}}, "chroma"},
		{"bad chromaticity", []Row{{Hue: 5, Family: color.Red, Value: 5, Chroma: 2, X: 1.3, Y: 0.3}}, "unit square"},
		{"duplicate", []Row{base, base}, "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows)
			if err == nil {
				t.Fatal("New() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("New() error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	table, err := New(testRows())
	if err != nil {
		t.Fatal(err)
	}

	got, ok := table.Lookup(5, color.Red, 5, 4)
	if !ok {
		t.Fatal("Lookup(5R 5/4) missing")
	}
	if got.X != 0.38 || got.Y != 0.31 || got.Luminance != 0.1977 {
		t.Errorf("Lookup(5R 5/4) = %+v", got)
	}

	missing := []struct {
		name   string
		hue    float64
		family color.Family
		value  int
		chroma int
	}{
		{"absent chroma", 5, color.Red, 5, 6},
		{"absent value", 5, color.Red, 4, 2},
		{"off-grid hue", 4, color.Red, 5, 2},
		{"other family", 5, color.Yellow, 5, 2},
	}
	for _, tt := range missing {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := table.Lookup(tt.hue, tt.family, tt.value, tt.chroma); ok {
				t.Error("Lookup() found a point that is not in the table")
			}
		})
	}
}

func TestMaxChroma(t *testing.T) {
	table, err := New(testRows())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		hue    float64
		family color.Family
		value  int
		want   float64
	}{
		{"grid hue", 5, color.Red, 5, 4},
		{"grid hue other row", 5, color.Red, 6, 8},
		{"between grid hues", 6.25, color.Red, 5, 3},
		{"missing neighbour wedge", 6.25, color.Red, 6, 4},
		{"wraps into RP", 1.25, color.Red, 5, 3},
		{"family boundary", 10, color.RedPurple, 5, 6},
		{"no data", 5, color.Blue, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.MaxChroma(tt.hue, tt.value, tt.family)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("MaxChroma(%v%s, %d) = %v, want %v", tt.hue, tt.family, tt.value, got, tt.want)
			}
		})
	}

	if got := table.GridMaxChroma(5, color.Red, 6); got != 8 {
		t.Errorf("GridMaxChroma(5R, 6) = %d, want 8", got)
	}
}

func TestMaxChromaAt(t *testing.T) {
	table, err := New(testRows())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		value float64
		want  float64
	}{
		{5, 4},
		{5.5, 6},
		{5.25, 5},
		{6, 8},
		{9.5, 0},
	}

	for _, tt := range tests {
		got := table.MaxChromaAt(5, tt.value, color.Red)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("MaxChromaAt(5R, %v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestValueRows(t *testing.T) {
	tests := []struct {
		value    float64
		lo, hi   int
		wantFrac float64
	}{
		{0.4, 1, 1, 0},
		{1, 1, 1, 0},
		{4.25, 4, 5, 0.25},
		{7, 7, 7, 0},
		{9.6, 9, 9, 0},
		{10, 9, 9, 0},
	}

	for _, tt := range tests {
		lo, hi, frac := ValueRows(tt.value)
		if lo != tt.lo || hi != tt.hi || math.Abs(frac-tt.wantFrac) > 1e-12 {
			t.Errorf("ValueRows(%v) = (%d, %d, %v), want (%d, %d, %v)", tt.value, lo, hi, frac, tt.lo, tt.hi, tt.wantFrac)
		}
	}
}

func TestRowSpec(t *testing.T) {
	r := Row{Hue: 10, Family: color.RedPurple, Value: 3, Chroma: 6}
	want := color.Spec{Hue: 10, Family: color.RedPurple, Value: 3, Chroma: 6}
	if got := r.Spec(); got != want {
		t.Errorf("Spec() = %+v, want %+v", got, want)
	}
}
