package color

import (
	"slices"
	"strings"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"with hash", "#eb6f92", Color{235, 111, 146}, false},
		{"without hash", "eb6f92", Color{235, 111, 146}, false},
		{"black", "#000000", Color{0, 0, 0}, false},
		{"white", "#ffffff", Color{255, 255, 255}, false},
		{"uppercase", "#AABBCC", Color{170, 187, 204}, false},
		{"too short", "#fff", Color{}, true},
		{"too long", "#aabbccdd", Color{}, true},
		{"invalid chars", "#zzzzzz", Color{}, true},
		{"empty", "", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRGB(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"bare triple", "255,0,0", Color{255, 0, 0}, false},
		{"spaces", " 221, 238 ,238 ", Color{221, 238, 238}, false},
		{"css form", "rgb(187, 255, 153)", Color{187, 255, 153}, false},
		{"two components", "1,2", Color{}, true},
		{"overflow", "256,0,0", Color{}, true},
		{"negative", "-1,0,0", Color{}, true},
		{"not a number", "a,b,c", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRGB(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRGB(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseRGB(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDispatch(t *testing.T) {
	a, err := Parse("#ff8000")
	if err != nil {
		t.Fatalf("Parse(hex) error: %v", err)
	}
	b, err := Parse("255,128,0")
	if err != nil {
		t.Fatalf("Parse(rgb) error: %v", err)
	}
	if a != b {
		t.Errorf("Parse(hex) = %v, Parse(rgb) = %v, want equal", a, b)
	}
}

func TestColorHex(t *testing.T) {
	c := Color{235, 111, 146}
	want := "#eb6f92"
	if got := c.Hex(); got != want {
		t.Errorf("Color.Hex() = %q, want %q", got, want)
	}
}

func TestColorRGB(t *testing.T) {
	c := Color{235, 111, 146}
	want := "rgb(235, 111, 146)"
	if got := c.RGB(); got != want {
		t.Errorf("Color.RGB() = %q, want %q", got, want)
	}
}

func TestColorHexZeroPadding(t *testing.T) {
	c := Color{0, 5, 10}
	want := "#00050a"
	if got := c.Hex(); got != want {
		t.Errorf("Color.Hex() = %q, want %q", got, want)
	}
}

func TestNode_Lookup(t *testing.T) {
	// Build: palette { black = "#000000"; highlight { color = "#c0c0c0"; low = "#21202e" } }
	black, _ := ParseHex("#000000")
	gray, _ := ParseHex("#c0c0c0")
	low, _ := ParseHex("#21202e")

	root := &Node{
		Children: map[string]*Node{
			"black": {Color: &black},
			"highlight": {
				Color: &gray,
				Children: map[string]*Node{
					"low": {Color: &low},
				},
			},
		},
	}

	tests := []struct {
		name    string
		path    []string
		want    string
		wantErr bool
	}{
		{"flat leaf", []string{"black"}, "#000000", false},
		{"nested block with color", []string{"highlight"}, "#c0c0c0", false},
		{"nested child", []string{"highlight", "low"}, "#21202e", false},
		{"not found", []string{"missing"}, "", true},
		{"namespace only", []string{"nocolor"}, "", true},
	}

	// Add a namespace-only node for the error case
	root.Children["nocolor"] = &Node{
		Children: map[string]*Node{
			"child": {Color: &black},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := root.Lookup(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("Lookup(%v) error = %v, wantErr %v", tt.path, err, tt.wantErr)
				return
			}
			if err == nil && got.Hex() != tt.want {
				t.Errorf("Lookup(%v) = %q, want %q", tt.path, got.Hex(), tt.want)
			}
		})
	}
}

func TestNode_Walk(t *testing.T) {
	black := Color{0, 0, 0}
	gray := Color{192, 192, 192}
	low := Color{33, 32, 46}

	root := &Node{
		Children: map[string]*Node{
			"zeta":  {Color: &black},
			"alpha": {Color: &low},
			"highlight": {
				Color: &gray,
				Children: map[string]*Node{
					"low": {Color: &low},
				},
			},
			"empty": {Children: map[string]*Node{}},
		},
	}

	var got []string
	root.Walk(func(path []string, c Color) {
		got = append(got, strings.Join(path, ".")+"="+c.Hex())
	})

	want := []string{
		"alpha=#21202e",
		"highlight.color=#c0c0c0",
		"highlight.low=#21202e",
		"zeta=#000000",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Walk visited %v, want %v", got, want)
	}
}
