// Package format writes palette files and conversion reports in canonical
// HCL style.
package format

import (
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/jsvensson/munsell/internal/color"
)

var (
	multipleBlankLines        = regexp.MustCompile(`\n{3,}`)
	blankLineAfterOpenBrace   = regexp.MustCompile(`\{\n\s*\n`)
	blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)
)

// Format returns HCL source in canonical style: hclwrite indentation and
// alignment, at most one blank line in a row, and no blank lines just
// inside braces. It works on incomplete source, so editors can format
// while the user is typing.
func Format(content string) (string, error) {
	out := string(hclwrite.Format([]byte(content)))
	out = multipleBlankLines.ReplaceAllString(out, "\n\n")
	out = blankLineAfterOpenBrace.ReplaceAllString(out, "{\n")
	out = blankLineBeforeCloseBrace.ReplaceAllString(out, "\n${1}")
	return out, nil
}

// Render writes converted swatches as a munsell block mirroring the palette
// tree:
//
//	munsell {
//	  love = "7.9R 5.2/20.5"
//	  highlight {
//	    color = "N2.1/"
//	  }
//	}
//
// A swatch that failed to convert is written as null, preceded by a comment
// carrying the error. title, when set, becomes a leading comment.
func Render(title string, swatches []color.Swatch) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()
	if title != "" {
		root.AppendUnstructuredTokens(comment(title))
	}
	top := root.AppendNewBlock("munsell", nil).Body()

	groups := map[string]*hclwrite.Body{"": top}
	for _, s := range swatches {
		if len(s.Path) == 0 {
			continue
		}
		body := group(groups, s.Path[:len(s.Path)-1])
		name := s.Path[len(s.Path)-1]
		if s.Err != nil {
			body.AppendUnstructuredTokens(comment(name + ": " + s.Err.Error()))
			body.SetAttributeValue(name, cty.NullVal(cty.String))
			continue
		}
		body.SetAttributeValue(name, cty.StringVal(color.Format(s.Spec)))
	}

	out, _ := Format(string(f.Bytes()))
	return []byte(out)
}

// group returns the body for a group path, creating enclosing blocks as
// needed.
func group(groups map[string]*hclwrite.Body, path []string) *hclwrite.Body {
	key := strings.Join(path, ".")
	if body, ok := groups[key]; ok {
		return body
	}
	parent := group(groups, path[:len(path)-1])
	body := parent.AppendNewBlock(path[len(path)-1], nil).Body()
	groups[key] = body
	return body
}

func comment(text string) hclwrite.Tokens {
	text = strings.Join(strings.Fields(text), " ")
	return hclwrite.Tokens{{
		Type:  hclsyntax.TokenComment,
		Bytes: []byte("# " + text + "\n"),
	}}
}
