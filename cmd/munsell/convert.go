package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/jsvensson/munsell"
)

func newConvertCmd(g *globalFlags) *cobra.Command {
	var showXYY bool

	cmd := &cobra.Command{
		Use:   "convert <color>...",
		Short: "Convert sRGB colors to Munsell notation",
		Long: `Convert one or more sRGB colors, given as hex ("#ff0000") or comma-separated
channels ("255,0,0"), to Munsell notation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := g.converter()
			if err != nil {
				return err
			}
			out := termenv.NewOutput(cmd.OutOrStdout())

			failed := 0
			for _, arg := range args {
				c, err := munsell.ParseColor(arg)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", arg, err)
					failed++
					continue
				}
				v := munsell.SRGBToXYY(c)
				spec, err := conv.Trace(v, g.tracer(c.Hex()))
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", c.Hex(), err)
					failed++
					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s%s  %s", swatch(out, c), c.Hex(), munsell.Format(spec))
				if showXYY {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s", formatXYY(v))
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return failures(failed, len(args))
		},
	}
	cmd.Flags().BoolVar(&showXYY, "xyy", false, "also print the xyY coordinates under Illuminant C")
	return cmd
}

func newXYYCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "xyy <x> <y> <Y>",
		Short: "Convert CIE xyY (Illuminant C) to Munsell notation",
		Long:  "Convert a CIE xyY triple under Illuminant C to Munsell notation. Y is relative luminance in [0, 1].",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var vals [3]float64
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid number %q", arg)
				}
				vals[i] = v
			}

			conv, err := g.converter()
			if err != nil {
				return err
			}
			v := munsell.XYY{X: vals[0], Y: vals[1], Luminance: vals[2]}
			spec, err := conv.Trace(v, g.tracer(strings.Join(args, " ")))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), munsell.Format(spec))
			return nil
		},
	}
}

func newSpecCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "spec <notation>...",
		Short: "Convert Munsell notation to xyY and sRGB",
		Long: `Convert Munsell notation such as "5R 4/14" or "N5/" to CIE xyY under
Illuminant C and to the nearest sRGB color. Colors outside the sRGB gamut
are clipped and marked.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := g.converter()
			if err != nil {
				return err
			}
			out := termenv.NewOutput(cmd.OutOrStdout())

			failed := 0
			for _, arg := range args {
				spec, err := munsell.ParseNotation(arg)
				if err == nil {
					err = printSpec(cmd.OutOrStdout(), out, conv, spec)
				}
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", arg, err)
					failed++
				}
			}
			return failures(failed, len(args))
		},
	}
}

func printSpec(w io.Writer, out *termenv.Output, conv *munsell.Converter, spec munsell.Spec) error {
	v, err := conv.SpecToXYY(spec)
	if err != nil {
		return err
	}
	c, inGamut, err := conv.SpecToSRGB(spec)
	if err != nil {
		return err
	}
	clipped := ""
	if !inGamut {
		clipped = " (clipped)"
	}
	_, err = fmt.Fprintf(w, "%s%s  %s  %s%s\n", swatch(out, c), munsell.Format(spec), formatXYY(v), c.Hex(), clipped)
	return err
}

// swatch is a two-cell color sample, or nothing when the output has no
// color support.
func swatch(out *termenv.Output, c munsell.Color) string {
	if out.Profile == termenv.Ascii {
		return ""
	}
	return out.String("  ").Background(out.Color(c.Hex())).String() + " "
}

func formatXYY(v munsell.XYY) string {
	return fmt.Sprintf("xyY(%.5f, %.5f, %.5f)", v.X, v.Y, v.Luminance)
}

func failures(failed, total int) error {
	if failed == 0 {
		return nil
	}
	if total == 1 {
		return errSilent
	}
	return fmt.Errorf("%d of %d conversions failed", failed, total)
}
