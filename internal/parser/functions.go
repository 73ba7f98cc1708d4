package parser

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/jsvensson/munsell/internal/color"
)

// Resolver converts Munsell specifications to sRGB.
type Resolver interface {
	SpecToSRGB(color.Spec) (c color.Color, inGamut bool, err error)
}

// Functions returns the functions available in palette files.
func Functions(r Resolver) map[string]function.Function {
	return map[string]function.Function{
		"munsell": makeMunsellFunc(r),
	}
}

// makeMunsellFunc creates an HCL function that converts a Munsell notation
// to a hex color.
// Usage: munsell("5R 4/14") or munsell("N5/")
func makeMunsellFunc(r Resolver) function.Function {
	return function.New(&function.Spec{
		Description: "Converts a Munsell notation such as \"5R 4/14\" to an sRGB hex color",
		Params: []function.Parameter{
			{Name: "notation", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			spec, err := color.ParseNotation(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			if r == nil {
				return cty.NilVal, errors.New("munsell() needs a renotation dataset")
			}

			c, inGamut, err := r.SpecToSRGB(spec)
			if err != nil {
				return cty.NilVal, err
			}
			if !inGamut {
				return cty.NilVal, fmt.Errorf("%s is outside the sRGB gamut (nearest %s)", color.Format(spec), c.Hex())
			}
			return cty.StringVal(c.Hex()), nil
		},
	})
}
