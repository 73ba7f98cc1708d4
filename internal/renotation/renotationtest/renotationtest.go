// Package renotationtest provides a complete, synthetic renotation grid for
// tests. The coordinates are generated from a smooth analytic model that has
// the qualitative shape of the real data: chroma rings grow outwards from
// Illuminant C, hue angle increases with hue, and the maximum chroma varies
// by hue and value. It is not a substitute for the published dataset.
package renotationtest

import (
	"math"
	"sync"

	"github.com/jsvensson/munsell/internal/color"
	"github.com/jsvensson/munsell/internal/renotation"
)

// Table returns the shared synthetic table.
var Table = sync.OnceValue(func() *renotation.Table {
	t, err := renotation.New(Rows())
	if err != nil {
		panic("renotationtest: " + err.Error())
	}
	return t
})

// Rows generates the synthetic grid: 40 hues, values 1-9 and even chromas
// up to MaxChroma.
func Rows() []renotation.Row {
	var rows []renotation.Row
	for f := color.Red; f <= color.RedPurple; f++ {
		for _, hue := range color.GridHues {
			h := color.ASTMHue(hue, f)
			for v := renotation.MinValue; v <= renotation.MaxValue; v++ {
				for c := 2; c <= MaxChroma(h, v); c += 2 {
					x, y := XY(h, v, c)
					rows = append(rows, renotation.Row{
						Hue:    hue,
						Family: f,
						Value:  v,
						Chroma: c,
						X:      x,
						Y:      y,
						Lum:    color.LuminanceFromValue(float64(v)),
					})
				}
			}
		}
	}
	return rows
}

// MaxChroma is the model envelope for continuous hue h, between 4 and 16.
func MaxChroma(h float64, value int) int {
	s := (1 + math.Sin(radians(h*3.6+20*float64(value)))) / 2
	w := 1 - math.Abs(float64(value)-5)/6
	return 2 * int(math.Round((4+12*s*w)/2))
}

// XY is the model chromaticity of a grid point at continuous hue h.
func XY(h float64, value, chroma int) (x, y float64) {
	c := float64(chroma)
	theta := h*3.6 - 20
	phi := theta + 6*math.Sin(radians(2*theta)) + 0.15*c
	k := 0.0135 - 0.0006*float64(value)
	rho := c * k * (1 + 0.12*math.Cos(radians(theta-40))) * (1 - 0.004*c)
	return color.IlluminantCx + rho*math.Cos(radians(phi)),
		color.IlluminantCy + rho*math.Sin(radians(phi))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
