// Command munsell-lsp is a language server for HCL palette files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/jsvensson/munsell"
	"github.com/jsvensson/munsell/internal/lsp"
)

var version = "dev"

func main() {
	var (
		data      string
		verbosity int
	)

	cmd := &cobra.Command{
		Use:           "munsell-lsp",
		Short:         "Language server for HCL palette files",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout carries the protocol; logs go to stderr.
			commonlog.Configure(verbosity, nil)

			var conv lsp.Converter
			if data != "" {
				c, err := munsell.Open(data, munsell.DefaultOptions())
				if err != nil {
					return err
				}
				conv = c
			}
			return lsp.NewServer(version, conv).Run()
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "renotation dataset for munsell() and hover notation")
	cmd.Flags().IntVarP(&verbosity, "verbosity", "v", 1, "log verbosity")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "munsell-lsp:", err)
		os.Exit(1)
	}
}
