package lsp

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/munsell/internal/color"
	"github.com/jsvensson/munsell/internal/parser"
)

const diagnosticSource = "munsell"

// AnalysisResult holds everything the server knows about one palette file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Palette     *color.Node
	Symbols     map[string]protocol.Range // "palette.base", "palette.highlight" -> definition range
	Colors      []ColorLocation
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
	Path  string // "palette.highlight.low"
	IsRef bool   // value is a palette reference, not a literal
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(max(pos.Line-1, 0)),
		Character: uint32(max(pos.Column-1, 0)),
	}
}

func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze resolves palette source held in memory. munsell() calls are
// resolved with r, which may be nil. Every problem becomes a diagnostic;
// entries that resolve are still reported.
func Analyze(filename, content string, r parser.Resolver) *AnalysisResult {
	res, diags := parser.ParseSource([]byte(content), filename, r)

	result := &AnalysisResult{
		Palette: res.Palette,
		Symbols: make(map[string]protocol.Range),
	}
	for _, d := range diags {
		result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
	}

	for _, e := range res.Entries {
		path := "palette." + strings.Join(e.Path, ".")
		result.Symbols[path] = hclRangeToLSP(e.Range)
		// A group's color attribute also defines the group reference.
		if group, ok := strings.CutSuffix(path, ".color"); ok && len(e.Path) > 1 {
			result.Symbols[group] = hclRangeToLSP(e.Range)
		}
		result.Colors = append(result.Colors, ColorLocation{
			Range: hclRangeToLSP(e.ValueRange),
			Color: e.Color,
			Path:  path,
			IsRef: e.IsRef,
		})
	}
	return result
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := protocol.DiagnosticSeverityError
	if d.Severity == hcl.DiagWarning {
		sev = protocol.DiagnosticSeverityWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagnosticSource),
	}
	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}
	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}
	return diag
}

func strPtr(s string) *string {
	return &s
}
