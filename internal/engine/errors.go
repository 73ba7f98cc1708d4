package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jsvensson/munsell/internal/color"
)

// Error kinds. Every error returned by the engine wraps exactly one of them.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrOutOfGamut     = errors.New("out of gamut")
	ErrNonConvergence = errors.New("no convergence")
	ErrDataMissing    = errors.New("renotation data missing")
)

// Error describes a failed conversion and the solver state at the point of
// failure.
type Error struct {
	Kind     error  // one of the Err* kinds
	Input    string // the input as given, e.g. "xyY(0.3, 0.3, 0.2)" or a notation
	Value    float64
	Last     color.Spec
	Residual float64 // last xy error, NaN when nothing was evaluated
	Err      error   // underlying cause, may be nil
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v: input %s", e.Kind, e.Input)
	if e.Kind != ErrInvalidInput {
		fmt.Fprintf(&b, ", value %.4f, last %s", e.Value, color.Format(e.Last))
		if !math.IsNaN(e.Residual) {
			fmt.Fprintf(&b, ", xy error %.3g", e.Residual)
		}
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func describeXYY(v color.XYY) string {
	return fmt.Sprintf("xyY(%g, %g, %g)", v.X, v.Y, v.Luminance)
}

func specError(kind error, s color.Spec, err error) *Error {
	return &Error{
		Kind:     kind,
		Input:    color.Format(s),
		Value:    s.Value,
		Last:     s,
		Residual: math.NaN(),
		Err:      err,
	}
}
