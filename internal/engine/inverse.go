package engine

import (
	"fmt"
	"math"

	"github.com/jsvensson/munsell/internal/color"
)

// Bounds on the secant estimate of d(angle)/d(hue), in degrees per ASTM hue
// step. The nominal slope is 3.6.
const (
	minHueSlope = 0.5
	maxHueSlope = 20
)

// XYYToSpec returns the Munsell specification whose forward image is v.
func (e *Engine) XYYToSpec(v color.XYY) (color.Spec, error) {
	return e.Solve(v, nil)
}

// Solve is XYYToSpec with an optional tracer that observes every iteration.
//
// The value comes straight from the luminance. Hue and chroma are then
// refined in turn: the hue moves by the angular error divided by a secant
// estimate of the local angle-per-hue slope, and the chroma is scaled by the
// ratio of target to current radius, clamped to the renotation envelope.
// Each correction has its own damping factor, halved whenever that
// correction changes sign twice in three iterations.
func (e *Engine) Solve(v color.XYY, tr Tracer) (color.Spec, error) {
	if err := validateXYY(v); err != nil {
		return color.Spec{}, &Error{Kind: ErrInvalidInput, Input: describeXYY(v), Err: err}
	}

	value := color.ValueFromLuminance(v.Luminance)
	rhoT, phiT := polar(v.X, v.Y)
	if v.Luminance == 0 || rhoT < e.opts.RhoThreshold {
		return color.Neutral(value), nil
	}
	if phiT < 0 {
		phiT += 360
	}

	s := solver{e: e, target: v, value: value, rhoT: rhoT, phiT: phiT, tr: tr}
	return s.run()
}

// solver is the per-call state of one inverse conversion.
type solver struct {
	e      *Engine
	target color.XYY
	value  float64
	rhoT   float64
	phiT   float64
	tr     Tracer

	h, c     float64 // continuous hue and chroma
	x, y     float64 // forward image of (h, c)
	residual float64
}

func (s *solver) run() (color.Spec, error) {
	opts := s.e.opts

	s.h = wrapASTM(s.phiT / 3.6)
	s.residual = math.NaN()

	limit := s.e.maxChroma(s.h, s.value)
	if limit <= 0 {
		return color.Spec{}, s.fail(ErrDataMissing, fmt.Errorf("no renotation envelope at %s", s.hueString()))
	}

	// Scale the target radius against the chroma 2 ring at this hue.
	s.c = 2
	x2, y2, err := s.e.xy(s.h, s.value, 2)
	if err != nil {
		return color.Spec{}, s.fail(ErrDataMissing, err)
	}
	if r2, _ := polar(x2, y2); r2 > 0 {
		s.c = 2 * s.rhoT / r2
	}
	s.c = max(min(2, limit), min(limit, s.c))

	if err := s.eval(); err != nil {
		return color.Spec{}, s.fail(ErrDataMissing, err)
	}
	s.trace(0, 1, 1)

	hueDamp := newDamper(opts.DampingFloor)
	chromaDamp := newDamper(opts.DampingFloor)
	slope := 3.6

	for i := 1; i <= opts.MaxIterations && s.residual >= opts.ConvergenceThreshold; i++ {
		_, phiC := polar(s.x, s.y)

		// Angular correction.
		dh := hueDamp.alpha * wrap180(s.phiT-phiC) / slope
		dh = max(-10, min(10, dh))
		h := wrapASTM(s.h + dh)

		limit = s.e.maxChroma(h, s.value)
		if limit <= 0 {
			s.h = h
			return color.Spec{}, s.fail(ErrDataMissing, fmt.Errorf("no renotation envelope at %s", s.hueString()))
		}
		s.c = min(s.c, limit)
		xB, yB, err := s.e.xy(h, s.value, s.c)
		if err != nil {
			return color.Spec{}, s.fail(ErrDataMissing, err)
		}
		rhoB, phiB := polar(xB, yB)
		if math.Abs(dh) > 1e-9 {
			if m := wrap180(phiB-phiC) / dh; m >= minHueSlope && m <= maxHueSlope {
				slope = m
			}
		}
		hueDamp.observe(dh)
		s.h = h

		// Radial correction.
		next := s.c
		if rhoB > 0 {
			next = s.c * s.rhoT / rhoB
		}
		c := s.c + chromaDamp.alpha*(next-s.c)
		c = max(1e-6, min(limit, c))
		chromaDamp.observe(c - s.c)
		s.c = c

		if err := s.eval(); err != nil {
			return color.Spec{}, s.fail(ErrDataMissing, err)
		}
		s.trace(i, hueDamp.alpha, chromaDamp.alpha)
	}

	if s.residual >= opts.ConvergenceThreshold && s.residual >= opts.FallbackThreshold {
		rhoC, _ := polar(s.x, s.y)
		limit = s.e.maxChroma(s.h, s.value)
		if s.c >= limit-1e-9 && rhoC < s.rhoT {
			return color.Spec{}, s.fail(ErrOutOfGamut, nil)
		}
		return color.Spec{}, s.fail(ErrNonConvergence, nil)
	}

	if s.c < opts.ThresholdChroma {
		return color.Neutral(s.value), nil
	}
	return s.spec(), nil
}

// eval evaluates the forward map at the current estimate.
func (s *solver) eval() error {
	x, y, err := s.e.xy(s.h, s.value, s.c)
	if err != nil {
		return err
	}
	s.x, s.y = x, y
	s.residual = max(math.Abs(x-s.target.X), math.Abs(y-s.target.Y))
	return nil
}

func (s *solver) spec() color.Spec {
	hue, f := color.HueFromASTM(s.h)
	return color.Spec{Hue: hue, Family: f, Value: s.value, Chroma: s.c}
}

func (s *solver) hueString() string {
	hue, f := color.HueFromASTM(s.h)
	return fmt.Sprintf("%.2f%s", hue, f)
}

func (s *solver) trace(i int, hueAlpha, chromaAlpha float64) {
	if s.tr == nil {
		return
	}
	s.tr.Trace(Step{
		Iteration:     i,
		Spec:          s.spec(),
		X:             s.x,
		Y:             s.y,
		Residual:      s.residual,
		HueDamping:    hueAlpha,
		ChromaDamping: chromaAlpha,
	})
}

func (s *solver) fail(kind, err error) *Error {
	return &Error{
		Kind:     kind,
		Input:    describeXYY(s.target),
		Value:    s.value,
		Last:     s.spec(),
		Residual: s.residual,
		Err:      err,
	}
}

// damper halves its step factor when the corrections it observes change
// sign twice within three iterations.
type damper struct {
	alpha float64
	floor float64
	signs []int
}

func newDamper(floor float64) *damper {
	return &damper{alpha: 1, floor: floor, signs: make([]int, 0, 3)}
}

func (d *damper) observe(delta float64) {
	if math.Abs(delta) < 1e-12 {
		return
	}
	sign := 1
	if delta < 0 {
		sign = -1
	}
	if len(d.signs) == 3 {
		d.signs = append(d.signs[:0], d.signs[1:]...)
	}
	d.signs = append(d.signs, sign)
	if len(d.signs) == 3 && d.signs[0] != d.signs[1] && d.signs[1] != d.signs[2] {
		d.alpha = max(d.floor, d.alpha/2)
		d.signs = d.signs[:0]
	}
}

// wrapASTM wraps a continuous hue into (0, 100].
func wrapASTM(h float64) float64 {
	h = math.Mod(h, 100)
	if h <= 0 {
		h += 100
	}
	return h
}

// maxChroma is the renotation envelope at continuous hue h.
func (e *Engine) maxChroma(h, value float64) float64 {
	hue, f := color.HueFromASTM(h)
	return e.table.MaxChromaAt(hue, value, f)
}

func validateXYY(v color.XYY) error {
	for _, c := range []struct {
		name string
		v    float64
	}{{"x", v.X}, {"y", v.Y}, {"Y", v.Luminance}} {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) {
			return fmt.Errorf("%s is not a finite number", c.name)
		}
		if c.v < 0 || c.v > 1 {
			return fmt.Errorf("%s = %v outside [0, 1]", c.name, c.v)
		}
	}
	return nil
}
