package color

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Color represents an 8-bit sRGB color.
type Color struct {
	R, G, B uint8
}

// Node represents a palette entry that can be both a color and a namespace.
// Color is nil for namespace-only nodes (groups without a color attribute).
// Children is nil for leaf nodes (flat color attributes).
type Node struct {
	Color    *Color
	Children map[string]*Node
}

// Lookup resolves a dot-path (as segments) to a Color.
// Returns an error if the path is not found or the target node has no color.
func (n *Node) Lookup(path []string) (Color, error) {
	current := n
	for _, part := range path {
		if current.Children == nil {
			return Color{}, fmt.Errorf("path not found: %s is a leaf, cannot traverse further", part)
		}
		child, ok := current.Children[part]
		if !ok {
			return Color{}, fmt.Errorf("path not found: %q does not exist", part)
		}
		current = child
	}
	if current.Color == nil {
		return Color{}, fmt.Errorf("path is a group, not a color; add a color attribute or reference a specific child")
	}
	return *current.Color, nil
}

// Walk calls fn for every node carrying a color, depth first. Children are
// visited in lexical order so the traversal is deterministic. A group's own
// color is reported under the path of the group with a trailing "color" segment.
func (n *Node) Walk(fn func(path []string, c Color)) {
	n.walk(nil, fn)
}

func (n *Node) walk(prefix []string, fn func(path []string, c Color)) {
	if n.Color != nil {
		path := prefix
		if n.Children != nil {
			path = appendPath(prefix, "color")
		}
		fn(path, *n.Color)
	}
	for _, name := range slices.Sorted(maps.Keys(n.Children)) {
		n.Children[name].walk(appendPath(prefix, name), fn)
	}
}

func appendPath(prefix []string, name string) []string {
	path := make([]string, len(prefix), len(prefix)+1)
	copy(path, prefix)
	return append(path, name)
}

// Swatch is a palette entry together with its Munsell conversion.
// Err is set when the conversion failed; Spec is then the zero value.
type Swatch struct {
	Path  []string
	Color Color
	Spec  Spec
	Err   error
}

// ParseHex parses a hex color string like "#eb6f92" into a Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	var r, g, b uint8
	_, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b}, nil
}

// ParseRGB parses a comma separated triple like "255,128,0" or
// "rgb(255, 128, 0)" into a Color.
func ParseRGB(s string) (Color, error) {
	body := strings.TrimSpace(s)
	if strings.HasPrefix(body, "rgb(") && strings.HasSuffix(body, ")") {
		body = body[len("rgb(") : len(body)-1]
	}
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("invalid rgb color %q: want three components", s)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid rgb color %q: %w", s, err)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Parse accepts either a hex color or an rgb triple.
func Parse(s string) (Color, error) {
	if strings.Contains(s, ",") {
		return ParseRGB(s)
	}
	return ParseHex(s)
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGB returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
