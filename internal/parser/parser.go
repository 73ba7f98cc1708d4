// Package parser reads HCL palette files:
//
//	meta {
//	  name = "Rose Pine"
//	}
//
//	palette {
//	  base = "#191724"
//	  love = munsell("2.5R 6/10")
//	  highlight {
//	    color = "#21202e"
//	    high  = palette.base
//	  }
//	}
//
// Entries are evaluated in source order, so an entry may reference any entry
// defined above it.
package parser

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/jsvensson/munsell/internal/color"
)

// Meta holds palette metadata.
type Meta struct {
	Name   string `hcl:"name,optional"`
	Author string `hcl:"author,optional"`
	URL    string `hcl:"url,optional"`
}

// PaletteBlock wraps the palette block for gohcl decoding.
type PaletteBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

// RawConfig is the top-level shape of a palette file.
type RawConfig struct {
	Meta    *Meta         `hcl:"meta,block"`
	Palette *PaletteBlock `hcl:"palette,block"`
	Remain  hcl.Body      `hcl:",remain"`
}

// Entry is one resolved palette attribute with its source location.
type Entry struct {
	Path       []string
	Color      color.Color
	Range      hcl.Range // the whole attribute
	ValueRange hcl.Range // the value expression
	IsRef      bool      // value is a palette reference
}

// Result is a parsed palette file.
type Result struct {
	Meta    Meta
	Palette *color.Node
	Entries []Entry // source order
}

// Parse reads and resolves a palette file. Munsell notations are resolved
// with r, which may be nil when the file uses none.
func Parse(path string, r Resolver) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	res, diags := ParseSource(src, path, r)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing palette: %s", diags.Error())
	}
	return res, nil
}

// ParseSource resolves palette source held in memory. It collects every
// problem instead of stopping at the first, and always returns the entries
// that did resolve.
func ParseSource(src []byte, filename string, r Resolver) (*Result, hcl.Diagnostics) {
	res := &Result{Palette: &color.Node{}}

	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return res, diags
	}

	var raw RawConfig
	if d := gohcl.DecodeBody(file.Body, nil, &raw); d.HasErrors() {
		return res, append(diags, d...)
	}
	if raw.Meta != nil {
		res.Meta = *raw.Meta
	}
	if raw.Palette == nil {
		return res, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing palette block",
			Detail:   "A palette file needs a palette block.",
			Subject: &hcl.Range{
				Filename: filename,
				Start:    hcl.Pos{Line: 1, Column: 1, Byte: 0},
				End:      hcl.Pos{Line: 1, Column: 1, Byte: 0},
			},
		})
	}

	body, ok := raw.Palette.Entries.(*hclsyntax.Body)
	if !ok {
		return res, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported palette body",
		})
	}

	p := paletteParser{res: res, funcs: Functions(r)}
	p.body(body, res.Palette, nil)
	return res, append(diags, p.diags...)
}

type paletteParser struct {
	res   *Result
	funcs map[string]function.Function
	diags hcl.Diagnostics
}

// item is an attribute or block in source order.
type item struct {
	pos   hcl.Pos
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

func (p *paletteParser) body(body *hclsyntax.Body, node *color.Node, prefix []string) {
	var items []item
	for _, attr := range body.Attributes {
		items = append(items, item{pos: attr.SrcRange.Start, attr: attr})
	}
	for _, block := range body.Blocks {
		items = append(items, item{pos: block.DefRange().Start, block: block})
	}
	slices.SortFunc(items, func(a, b item) int {
		return a.pos.Byte - b.pos.Byte
	})

	for _, it := range items {
		if it.block != nil {
			p.block(it.block, node, prefix)
			continue
		}
		p.attribute(it.attr, node, prefix)
	}
}

func (p *paletteParser) block(block *hclsyntax.Block, node *color.Node, prefix []string) {
	if len(block.Labels) > 0 {
		p.errorf(block.DefRange(), "Unexpected block label", "Palette group %q takes no labels.", block.Type)
		return
	}
	if node.Children == nil {
		node.Children = make(map[string]*color.Node)
	}
	if _, dup := node.Children[block.Type]; dup {
		p.errorf(block.DefRange(), "Duplicate palette entry", "%s is already defined.", joinPath(prefix, block.Type))
		return
	}
	child := &color.Node{Children: make(map[string]*color.Node)}
	node.Children[block.Type] = child
	p.body(block.Body, child, append(slices.Clip(prefix), block.Type))
}

func (p *paletteParser) attribute(attr *hclsyntax.Attribute, node *color.Node, prefix []string) {
	path := append(slices.Clip(prefix), attr.Name)
	// A group's "color" attribute colors the group itself.
	isGroupColor := attr.Name == "color" && len(prefix) > 0

	if !isGroupColor {
		if _, dup := node.Children[attr.Name]; dup {
			p.errorf(attr.SrcRange, "Duplicate palette entry", "%s is already defined.", joinPath(prefix, attr.Name))
			return
		}
	}

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"palette": NodeValue(p.res.Palette)},
		Functions: p.funcs,
	}
	val, diags := attr.Expr.Value(ctx)
	if diags.HasErrors() {
		p.diags = append(p.diags, diags...)
		return
	}
	c, err := ResolveColor(val)
	if err != nil {
		p.errorf(attr.SrcRange, "Invalid color", "%s: %s", joinPath(prefix, attr.Name), err)
		return
	}

	if isGroupColor {
		node.Color = &c
	} else {
		if node.Children == nil {
			node.Children = make(map[string]*color.Node)
		}
		node.Children[attr.Name] = &color.Node{Color: &c}
	}
	p.res.Entries = append(p.res.Entries, Entry{
		Path:       path,
		Color:      c,
		Range:      attr.SrcRange,
		ValueRange: attr.Expr.Range(),
		IsRef:      isReference(attr.Expr),
	})
}

func (p *paletteParser) errorf(rng hcl.Range, summary, format string, args ...any) {
	p.diags = append(p.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   fmt.Sprintf(format, args...),
		Subject:  rng.Ptr(),
	})
}

// ResolveColor extracts a color from an evaluated palette value: a hex or
// rgb string, or a group object carrying a color attribute.
func ResolveColor(val cty.Value) (color.Color, error) {
	if val.IsNull() || !val.IsKnown() {
		return color.Color{}, fmt.Errorf("expected a color, got null")
	}
	if val.Type() == cty.String {
		return color.Parse(val.AsString())
	}
	if val.Type().IsObjectType() {
		if val.Type().HasAttribute("color") {
			if c := val.GetAttr("color"); c.Type() == cty.String {
				return color.Parse(c.AsString())
			}
		}
		return color.Color{}, fmt.Errorf("group has no color; reference a specific child or add a color attribute")
	}
	return color.Color{}, fmt.Errorf("expected a color string, got %s", val.Type().FriendlyName())
}

// NodeValue converts a palette tree to the cty value bound to the palette
// variable. Groups become objects; a group's own color is its "color"
// attribute.
func NodeValue(node *color.Node) cty.Value {
	if node.Children == nil {
		if node.Color != nil {
			return cty.StringVal(node.Color.Hex())
		}
		return cty.EmptyObjectVal
	}

	vals := make(map[string]cty.Value, len(node.Children)+1)
	if node.Color != nil {
		vals["color"] = cty.StringVal(node.Color.Hex())
	}
	for name, child := range node.Children {
		vals[name] = NodeValue(child)
	}
	return cty.ObjectVal(vals)
}

func isReference(expr hclsyntax.Expression) bool {
	switch expr.(type) {
	case *hclsyntax.ScopeTraversalExpr, *hclsyntax.RelativeTraversalExpr:
		return true
	default:
		return false
	}
}

func joinPath(prefix []string, name string) string {
	return strings.Join(append(append([]string{"palette"}, prefix...), name), ".")
}
