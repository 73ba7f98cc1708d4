package lsp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/munsell/internal/color"
	"github.com/jsvensson/munsell/internal/engine"
)

// posInRange reports whether pos is within [r.Start, r.End).
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// extractText returns the source text covered by an LSP range.
func extractText(content string, r protocol.Range) string {
	lines := strings.Split(content, "\n")
	startLine, endLine := int(r.Start.Line), int(r.End.Line)
	if startLine >= len(lines) {
		return ""
	}
	endLine = min(endLine, len(lines)-1)

	var parts []string
	for i := startLine; i <= endLine; i++ {
		line := lines[i]
		from, to := 0, len(line)
		if i == startLine {
			from = min(int(r.Start.Character), len(line))
		}
		if i == endLine {
			to = min(int(r.End.Character), len(line))
		}
		parts = append(parts, line[min(from, to):to])
	}
	return strings.Join(parts, "\n")
}

// hover describes the color under the cursor: hex and rgb forms, and the
// Munsell notation when a converter is available. References also show
// their source text.
func hover(result *AnalysisResult, content string, pos protocol.Position, conv Converter) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		var b strings.Builder
		if cl.IsRef {
			fmt.Fprintf(&b, "**%s**\n\n", extractText(content, cl.Range))
		}
		fmt.Fprintf(&b, "`%s` · `%s`", cl.Color.Hex(), cl.Color.RGB())
		if conv != nil {
			b.WriteString("\n\n")
			b.WriteString(munsellLine(conv, cl.Color))
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: b.String(),
			},
			Range: &cl.Range,
		}
	}
	return nil
}

func munsellLine(conv Converter, c color.Color) string {
	spec, err := conv.ColorToMunsell(c)
	if err == nil {
		return fmt.Sprintf("Munsell `%s`", color.Format(spec))
	}
	var convErr *engine.Error
	if errors.As(err, &convErr) && !errors.Is(err, engine.ErrInvalidInput) {
		return fmt.Sprintf("Munsell: %s (nearest `%s`)", convErr.Kind, color.Format(convErr.Last))
	}
	return "Munsell: " + err.Error()
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}
	return hover(s.docs.Result(uri), content, params.Position, s.conv), nil
}
