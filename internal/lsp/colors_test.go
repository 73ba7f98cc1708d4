package lsp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/munsell/internal/color"
)

func TestColorToLSP(t *testing.T) {
	tests := []struct {
		input color.Color
		want  protocol.Color
	}{
		{color.Color{R: 255}, protocol.Color{Red: 1, Alpha: 1}},
		{color.Color{G: 255}, protocol.Color{Green: 1, Alpha: 1}},
		{color.Color{R: 255, G: 255, B: 255}, protocol.Color{Red: 1, Green: 1, Blue: 1, Alpha: 1}},
		{color.Color{R: 128, G: 128, B: 128}, protocol.Color{Red: 128.0 / 255, Green: 128.0 / 255, Blue: 128.0 / 255, Alpha: 1}},
	}
	for _, tt := range tests {
		if got := colorToLSP(tt.input); got != tt.want {
			t.Errorf("colorToLSP(%s) = %+v, want %+v", tt.input.Hex(), got, tt.want)
		}
		if back := colorFromLSP(colorToLSP(tt.input)); back != tt.input {
			t.Errorf("colorFromLSP(colorToLSP(%s)) = %s", tt.input.Hex(), back.Hex())
		}
	}
}

func TestDocumentColors(t *testing.T) {
	result := Analyze("test.hcl", testPalette, stubConverter{})
	infos := documentColors(result)
	if len(infos) != len(result.Colors) {
		t.Fatalf("got %d color infos, want %d", len(infos), len(result.Colors))
	}
	if infos[1].Color != colorToLSP(stubRed) || infos[1].Range != result.Colors[1].Range {
		t.Errorf("love color info = %+v", infos[1])
	}

	if got := documentColors(nil); got == nil || len(got) != 0 {
		t.Errorf("documentColors(nil) = %v, want empty slice", got)
	}
}

func TestColorPresentation(t *testing.T) {
	content := testPalette
	result := Analyze("test.hcl", content, stubConverter{})
	params := func(i int, c color.Color) *protocol.ColorPresentationParams {
		return &protocol.ColorPresentationParams{Color: colorToLSP(c), Range: result.Colors[i].Range}
	}

	t.Run("hex literal", func(t *testing.T) {
		got := colorPresentation(content, params(0, stubRed), stubConverter{})
		want := []protocol.ColorPresentation{
			{Label: "#c8283c", TextEdit: &protocol.TextEdit{Range: result.Colors[0].Range, NewText: `"#c8283c"`}},
			{Label: `munsell("5.0R 4.0/14.0")`, TextEdit: &protocol.TextEdit{Range: result.Colors[0].Range, NewText: `munsell("5.0R 4.0/14.0")`}},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("presentation mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("munsell call without converter", func(t *testing.T) {
		got := colorPresentation(content, params(1, color.Color{R: 1, G: 2, B: 3}), nil)
		if len(got) != 1 || got[0].TextEdit.NewText != `"#010203"` {
			t.Errorf("presentations = %+v", got)
		}
	})

	t.Run("out of gamut has no munsell form", func(t *testing.T) {
		got := colorPresentation(content, params(0, color.Color{R: 255}), stubConverter{})
		if len(got) != 1 {
			t.Errorf("presentations = %+v, want only hex", got)
		}
	})

	t.Run("reference untouched", func(t *testing.T) {
		if got := colorPresentation(content, params(3, stubRed), stubConverter{}); len(got) != 0 {
			t.Errorf("presentations for a reference = %+v", got)
		}
	})
}
