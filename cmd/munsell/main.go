// Command munsell converts sRGB colors and palette files to Munsell notation.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/jsvensson/munsell"
	"github.com/jsvensson/munsell/internal/config"
)

var version = "dev" // Injected at build time via ldflags

// errSilent makes main exit non-zero without printing; the command has
// already reported the problem.
var errSilent = errors.New("silent")

type globalFlags struct {
	data      string
	config    string
	trace     bool
	verbosity int
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:           "munsell",
		Short:         "Convert sRGB colors to Munsell notation",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbosity := g.verbosity
			if g.trace {
				verbosity = max(verbosity, 2)
			}
			commonlog.Configure(verbosity, nil)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.data, "data", "", "renotation dataset (real.dat or all.dat format)")
	pf.StringVar(&g.config, "config", "", "HCL config file with dataset path and solver settings")
	pf.BoolVar(&g.trace, "trace", false, "log every solver iteration")
	pf.CountVarP(&g.verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	root.AddCommand(
		newConvertCmd(&g),
		newXYYCmd(&g),
		newSpecCmd(&g),
		newPaletteCmd(&g),
		newFmtCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version number",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)
	return root
}

// converter builds a Converter from --config and --data. --data wins over
// the config file's renotation path.
func (g *globalFlags) converter() (*munsell.Converter, error) {
	cfg := config.Default()
	if g.config != "" {
		var err error
		if cfg, err = config.Load(g.config); err != nil {
			return nil, err
		}
	}
	if g.data != "" {
		cfg.Renotation = g.data
	}
	if cfg.Renotation == "" {
		return nil, errors.New("no renotation dataset: pass --data or set renotation in --config")
	}

	commonlog.GetLogger("munsell.cli").Infof("loading renotation data from %s", cfg.Renotation)
	return munsell.Open(cfg.Renotation, cfg.Solver)
}

// tracer returns a Tracer logging each solver step, or nil without --trace.
func (g *globalFlags) tracer(input string) munsell.Tracer {
	if !g.trace {
		return nil
	}
	log := commonlog.GetLogger("munsell.solver")
	return munsell.TracerFunc(func(s munsell.Step) {
		log.Debugf("%s: #%d %s xy(%.6f, %.6f) err %.3g damping %.3g/%.3g",
			input, s.Iteration, munsell.Format(s.Spec), s.X, s.Y, s.Residual, s.HueDamping, s.ChromaDamping)
	})
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(os.Stderr, "munsell:", err)
		}
		os.Exit(1)
	}
}
