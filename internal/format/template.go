package format

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/jsvensson/munsell/internal/color"
)

// Report is the data a report template executes against.
type Report struct {
	Title    string
	Swatches []color.Swatch
}

var templateFuncs = template.FuncMap{
	"notation": color.Format,
	"hex":      func(c color.Color) string { return c.Hex() },
	"rgb":      func(c color.Color) string { return c.RGB() },
	"path":     func(p []string) string { return strings.Join(p, ".") },
	"neutral":  func(s color.Spec) bool { return s.IsNeutral() },
}

// ExecuteTemplate renders a report with the Go template at tmplPath. Besides
// the Report fields, templates can call notation, hex, rgb, path and
// neutral:
//
//	{{range .Swatches}}{{path .Path}} {{hex .Color}} {{if .Err}}{{.Err}}{{else}}{{notation .Spec}}{{end}}
//	{{end}}
func ExecuteTemplate(w io.Writer, tmplPath string, r Report) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(templateFuncs).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}
	if err := tmpl.Execute(w, r); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}
	return nil
}
