package lsp

import (
	"maps"
	"slices"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/munsell/internal/color"
)

// topLevelBlocks are the blocks a palette file may contain.
var topLevelBlocks = []string{"meta", "palette"}

// complete produces completion items for the cursor position: palette
// reference paths after "palette.", value snippets after "=", and block
// names at the top level.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}
	line := lines[pos.Line]
	before := line[:min(int(pos.Character), len(line))]

	if items := paletteCompletions(result, before); items != nil {
		return items
	}
	if isValuePosition(before) {
		return valueCompletions()
	}
	if blockDepth(lines, int(pos.Line)) == 0 && !strings.Contains(before, "=") {
		return topLevelCompletions()
	}
	return nil
}

// paletteCompletions offers the children of the palette node named by the
// reference being typed: "palette." lists the top level, "palette.group."
// lists the group.
func paletteCompletions(result *AnalysisResult, before string) []protocol.CompletionItem {
	if result == nil || result.Palette == nil {
		return nil
	}
	idx := strings.LastIndex(before, "palette.")
	if idx == -1 {
		return nil
	}

	segments := strings.Split(before[idx+len("palette."):], ".")
	node := result.Palette
	// The last segment is the partial name the client filters on.
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node.Children[seg]
		if !ok {
			return nil
		}
		node = child
	}
	if node.Children == nil {
		return nil
	}
	return childCompletions(node)
}

func childCompletions(node *color.Node) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	for _, name := range slices.Sorted(maps.Keys(node.Children)) {
		child := node.Children[name]
		item := protocol.CompletionItem{
			Label: name,
			Kind:  completionKindPtr(protocol.CompletionItemKindColor),
		}
		switch {
		case child.Children != nil:
			item.Kind = completionKindPtr(protocol.CompletionItemKindModule)
			item.Detail = strPtr("color group")
		case child.Color != nil:
			item.Detail = strPtr(child.Color.Hex())
		}
		items = append(items, item)
	}
	return items
}

// isValuePosition reports whether the cursor directly follows an "=".
func isValuePosition(before string) bool {
	trimmed := strings.TrimSpace(before)
	return strings.HasSuffix(trimmed, "=") && !strings.HasSuffix(trimmed, "==")
}

func valueCompletions() []protocol.CompletionItem {
	snippet := protocol.InsertTextFormatSnippet
	munsellSnippet := `munsell("${1:5R} ${2:5}/${3:10}")`
	hexSnippet := `"#${1:000000}"`
	paletteText := "palette."

	return []protocol.CompletionItem{
		{
			Label:            "munsell",
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr(`munsell("hue value/chroma")`),
			InsertText:       &munsellSnippet,
			InsertTextFormat: &snippet,
		},
		{
			Label:            "hex",
			Kind:             completionKindPtr(protocol.CompletionItemKindColor),
			Detail:           strPtr(`"#rrggbb"`),
			InsertText:       &hexSnippet,
			InsertTextFormat: &snippet,
		},
		{
			Label:      "palette",
			Kind:       completionKindPtr(protocol.CompletionItemKindVariable),
			Detail:     strPtr("palette reference"),
			InsertText: &paletteText,
		},
	}
}

// blockDepth counts the braces open before the cursor line.
func blockDepth(lines []string, cursorLine int) int {
	depth := 0
	for _, line := range lines[:cursorLine] {
		if i := strings.Index(line, "#"); i >= 0 && !strings.Contains(line[:i], `"`) {
			line = line[:i]
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
	}
	return max(depth, 0)
}

func topLevelCompletions() []protocol.CompletionItem {
	snippet := protocol.InsertTextFormatSnippet
	var items []protocol.CompletionItem
	for _, name := range topLevelBlocks {
		text := name + " {\n  $0\n}"
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             completionKindPtr(protocol.CompletionItemKindSnippet),
			InsertText:       &text,
			InsertTextFormat: &snippet,
		})
	}
	return items
}

func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion handles textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}
	return complete(s.docs.Result(uri), content, params.Position), nil
}
