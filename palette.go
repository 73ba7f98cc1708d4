package munsell

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jsvensson/munsell/internal/color"
	"github.com/jsvensson/munsell/internal/parser"
)

// Swatch is one palette entry with its conversion. Err holds a per-entry
// conversion failure.
type Swatch = color.Swatch

// Palette is a parsed palette file.
type Palette struct {
	Name   string
	Author string
	URL    string
	Root   *color.Node
}

// LoadPalette parses an HCL palette file. munsell("...") values are resolved
// with c.
func (c *Converter) LoadPalette(path string) (*Palette, error) {
	res, err := parser.Parse(path, c)
	if err != nil {
		return nil, fmt.Errorf("loading palette: %w", err)
	}
	return &Palette{
		Name:   res.Meta.Name,
		Author: res.Meta.Author,
		URL:    res.Meta.URL,
		Root:   res.Palette,
	}, nil
}

// ConvertPalette converts every color in the palette, in Walk order.
// Conversions run in parallel; a failed conversion is recorded on its
// Swatch and does not stop the others. The returned error is non-nil only
// when ctx is cancelled.
func (c *Converter) ConvertPalette(ctx context.Context, p *Palette) ([]Swatch, error) {
	var swatches []Swatch
	p.Root.Walk(func(path []string, col color.Color) {
		swatches = append(swatches, Swatch{Path: path, Color: col})
	})

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range swatches {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := &swatches[i]
			s.Spec, s.Err = c.ColorToMunsell(s.Color)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return swatches, nil
}
