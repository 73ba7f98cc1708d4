package lsp

import (
	"fmt"
	"math"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/munsell/internal/color"
)

// colorToLSP converts an 8-bit color to protocol.Color channels in [0, 1].
func colorToLSP(c color.Color) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R) / 255.0,
		Green: float32(c.G) / 255.0,
		Blue:  float32(c.B) / 255.0,
		Alpha: 1.0,
	}
}

func colorFromLSP(c protocol.Color) color.Color {
	channel := func(v float32) uint8 {
		return uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
	}
	return color.Color{R: channel(c.Red), G: channel(c.Green), B: channel(c.Blue)}
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation offers replacements for a color picked in the editor:
// the hex literal and, with a converter, the equivalent munsell() call.
// References are never replaced.
func colorPresentation(content string, params *protocol.ColorPresentationParams, conv Converter) []protocol.ColorPresentation {
	text := extractText(content, params.Range)
	if strings.HasPrefix(text, "palette.") {
		return []protocol.ColorPresentation{}
	}
	if !strings.HasPrefix(text, "\"") && !strings.HasPrefix(text, "munsell(") {
		return []protocol.ColorPresentation{}
	}

	c := colorFromLSP(params.Color)
	hex := c.Hex()
	presentations := []protocol.ColorPresentation{{
		Label: hex,
		TextEdit: &protocol.TextEdit{
			Range:   params.Range,
			NewText: `"` + hex + `"`,
		},
	}}

	if conv != nil {
		if spec, err := conv.ColorToMunsell(c); err == nil {
			call := fmt.Sprintf("munsell(%q)", color.Format(spec))
			presentations = append(presentations, protocol.ColorPresentation{
				Label: call,
				TextEdit: &protocol.TextEdit{
					Range:   params.Range,
					NewText: call,
				},
			})
		}
	}
	return presentations
}

// textDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	return documentColors(s.docs.Result(string(params.TextDocument.URI))), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params, s.conv), nil
}
