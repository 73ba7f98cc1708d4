package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// referenceAtCursor returns the palette reference path up to the segment
// under the cursor: on "base" in "palette.highlight.base" it returns
// "palette.highlight.base", on "highlight" it returns "palette.highlight".
// It returns "" when the cursor is not on a palette reference.
func referenceAtCursor(line string, character uint32) string {
	col := int(character)
	if col >= len(line) || !isIdentChar(line[col]) {
		return ""
	}

	end := col
	for end < len(line) && isIdentChar(line[end]) {
		end++
	}
	start := col
	for start > 0 && isIdentChar(line[start-1]) {
		start--
	}

	parts := strings.Split(line[start:end], ".")
	if len(parts) < 2 || parts[0] != "palette" {
		return ""
	}

	cursorInWord := col - start
	var path []string
	offset := 0
	for _, part := range parts {
		if offset > cursorInWord {
			break
		}
		path = append(path, part)
		offset += len(part) + 1
	}
	if len(path) < 2 {
		return ""
	}
	return strings.Join(path, ".")
}

// isIdentChar reports whether b can appear in a dotted reference.
func isIdentChar(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_' || b == '-' || b == '.'
}

// definition returns where the palette entry referenced under the cursor is
// defined, or nil.
func definition(result *AnalysisResult, content string, uri string, pos protocol.Position) *protocol.Location {
	if result == nil {
		return nil
	}

	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}
	ref := referenceAtCursor(lines[pos.Line], pos.Character)
	if ref == "" {
		return nil
	}

	rng, ok := result.Symbols[ref]
	if !ok {
		return nil
	}
	return &protocol.Location{
		URI:   protocol.DocumentUri(uri),
		Range: rng,
	}
}

// textDocumentDefinition handles textDocument/definition requests.
func (s *Server) textDocumentDefinition(_ *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}
	if loc := definition(s.docs.Result(uri), content, uri, params.Position); loc != nil {
		return loc, nil
	}
	return nil, nil
}
