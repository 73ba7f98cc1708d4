package engine

import "github.com/jsvensson/munsell/internal/color"

// Step is one observation of the inverse solver. Iteration 0 is the initial
// estimate.
type Step struct {
	Iteration     int
	Spec          color.Spec
	X, Y          float64 // forward image of Spec
	Residual      float64 // max(|dx|, |dy|) to the target
	HueDamping    float64
	ChromaDamping float64
}

// Tracer receives solver steps. A Tracer is supplied per call and is only
// invoked from the calling goroutine.
type Tracer interface {
	Trace(Step)
}

// TracerFunc adapts a function to a Tracer.
type TracerFunc func(Step)

func (f TracerFunc) Trace(s Step) { f(s) }

// Recorder is a Tracer that keeps every step.
type Recorder struct {
	Steps []Step
}

func (r *Recorder) Trace(s Step) { r.Steps = append(r.Steps, s) }
