package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestReferenceAtCursor(t *testing.T) {
	tests := []struct {
		line string
		char uint32
		want string
	}{
		{"  low = palette.base", 16, "palette.base"},
		{"  low = palette.base", 19, "palette.base"},
		{"  low = palette.highlight.low", 18, "palette.highlight"},
		{"  low = palette.highlight.low", 27, "palette.highlight.low"},
		{"  low = palette.base", 9, ""},
		{"  low = palette.base", 2, ""},
		{"  low = other.base", 15, ""},
		{"  low = palette.base", 40, ""},
		{"  low = palette.base ", 20, ""},
	}
	for _, tt := range tests {
		if got := referenceAtCursor(tt.line, tt.char); got != tt.want {
			t.Errorf("referenceAtCursor(%q, %d) = %q, want %q", tt.line, tt.char, got, tt.want)
		}
	}
}

func TestDefinition(t *testing.T) {
	result := Analyze("test.hcl", testPalette, stubConverter{})
	uri := "file:///test.hcl"

	tests := []struct {
		name string
		pos  protocol.Position
		want string
	}{
		{"flat reference", protocol.Position{Line: 9, Character: 20}, "palette.base"},
		{"group reference", protocol.Position{Line: 11, Character: 20}, "palette.highlight"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := definition(result, testPalette, uri, tt.pos)
			if loc == nil {
				t.Fatal("expected a definition")
			}
			if loc.URI != protocol.DocumentUri(uri) {
				t.Errorf("URI = %q, want %q", loc.URI, uri)
			}
			if loc.Range != result.Symbols[tt.want] {
				t.Errorf("Range = %+v, want definition of %s %+v", loc.Range, tt.want, result.Symbols[tt.want])
			}
		})
	}

	if loc := definition(result, testPalette, uri, protocol.Position{Line: 5, Character: 3}); loc != nil {
		t.Errorf("definition on an attribute name = %+v, want nil", loc)
	}
	if loc := definition(nil, testPalette, uri, protocol.Position{Line: 9, Character: 20}); loc != nil {
		t.Error("definition with no analysis should be nil")
	}
}
