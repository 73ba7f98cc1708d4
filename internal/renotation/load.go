package renotation

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsvensson/munsell/internal/color"
)

var hueToken = regexp.MustCompile(`^([0-9]*\.?[0-9]+)([A-Za-z]{1,2})$`)

// Load reads a renotation dataset file. See Parse for the accepted format.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading renotation data: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse reads the published renotation layout, one grid point per line:
//
//	h     V  C  x       y       Y
//	2.5R  1  2  0.3629  0.2710  1.21
//
// The hue may also be split into family and number columns ("R 2.5 1 2 ...").
// Fields are separated by whitespace or commas, Y is on the 0-100 scale.
// Blank lines, '#' comments and a leading header line are skipped, as are
// rows whose value is not an integer in 1..9 (the extrapolated rows of the
// "all" dataset), since the grid holds integer value rows only.
func Parse(r io.Reader) (*Table, error) {
	var rows []Row
	sc := bufio.NewScanner(r)
	lineNo := 0
	seenData := false
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})

		row, skip, err := parseRow(fields)
		if err != nil {
			if !seenData && isHeader(fields) {
				seenData = true
				continue
			}
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		seenData = true
		if skip {
			continue
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading renotation data: %w", err)
	}
	return New(rows)
}

// isHeader reports whether a line reads like a column header rather than data.
func isHeader(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err == nil {
			return false
		}
	}
	return true
}

func parseRow(fields []string) (row Row, skip bool, err error) {
	var hue float64
	var fam color.Family
	var rest []string

	switch len(fields) {
	case 6:
		m := hueToken.FindStringSubmatch(fields[0])
		if m == nil {
			return Row{}, false, fmt.Errorf("malformed hue %q", fields[0])
		}
		if hue, err = strconv.ParseFloat(m[1], 64); err != nil {
			return Row{}, false, fmt.Errorf("malformed hue %q: %w", fields[0], err)
		}
		if fam, err = color.ParseFamily(m[2]); err != nil {
			return Row{}, false, err
		}
		rest = fields[1:]
	case 7:
		if fam, err = color.ParseFamily(fields[0]); err != nil {
			return Row{}, false, err
		}
		if hue, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return Row{}, false, fmt.Errorf("malformed hue number %q: %w", fields[1], err)
		}
		rest = fields[2:]
	default:
		return Row{}, false, fmt.Errorf("want 6 or 7 fields, got %d", len(fields))
	}

	var nums [5]float64
	names := [5]string{"value", "chroma", "x", "y", "Y"}
	for i, f := range rest {
		if nums[i], err = strconv.ParseFloat(f, 64); err != nil {
			return Row{}, false, fmt.Errorf("malformed %s %q: %w", names[i], f, err)
		}
	}
	value, chroma := nums[0], nums[1]
	if value != math.Trunc(value) || value < MinValue || value > MaxValue {
		return Row{}, true, nil
	}
	if chroma != math.Trunc(chroma) {
		return Row{}, false, fmt.Errorf("chroma %v is not an integer", chroma)
	}

	// A hue number of 0 names the 10 of the previous family.
	if hue == 0 {
		hue, fam = 10, fam.Prev()
	}

	return Row{
		Hue:    hue,
		Family: fam,
		Value:  int(value),
		Chroma: int(chroma),
		X:      nums[2],
		Y:      nums[3],
		Lum:    nums[4] / 100,
	}, false, nil
}
