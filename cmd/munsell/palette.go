package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsvensson/munsell/internal/format"
)

func newPaletteCmd(g *globalFlags) *cobra.Command {
	var (
		tmpl   string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "palette <file.hcl>",
		Short: "Convert every color of an HCL palette file",
		Long: `Convert every color of an HCL palette file and print the result as a
munsell block mirroring the palette, or through a Go template with --template.
Colors that fail to convert are reported inline.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := g.converter()
			if err != nil {
				return err
			}
			p, err := conv.LoadPalette(args[0])
			if err != nil {
				return err
			}
			swatches, err := conv.ConvertPalette(cmd.Context(), p)
			if err != nil {
				return err
			}

			if tmpl != "" {
				err = format.ExecuteTemplate(cmd.OutOrStdout(), tmpl, format.Report{Title: p.Name, Swatches: swatches})
			} else {
				_, err = cmd.OutOrStdout().Write(format.Render(p.Name, swatches))
			}
			if err != nil {
				return err
			}

			failed := 0
			for _, s := range swatches {
				if s.Err != nil {
					failed++
				}
			}
			if strict && failed > 0 {
				return fmt.Errorf("%d of %d colors failed to convert", failed, len(swatches))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&tmpl, "template", "t", "", "render with a Go template instead of HCL")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any color fails to convert")
	return cmd
}

func newFmtCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Format HCL palette files",
		Long:  "Format one or more palette files in place. Prints the name of each file that was modified.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hasErrors := false
			needsFormatting := false

			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
					hasErrors = true
					continue
				}

				content := string(data)
				formatted, err := format.Format(content)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
					hasErrors = true
					continue
				}
				if formatted == content {
					continue
				}

				fmt.Fprintln(cmd.OutOrStdout(), path)
				needsFormatting = true

				if !check {
					if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
						hasErrors = true
					}
				}
			}

			if hasErrors || (check && needsFormatting) {
				return errSilent
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&check, "check", "c", false, "check if files are formatted (do not write changes)")
	return cmd
}
