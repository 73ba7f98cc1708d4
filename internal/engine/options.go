package engine

import (
	"errors"
	"fmt"
	"math"
)

// Options are the solver calibration constants.
type Options struct {
	// ThresholdChroma is the chroma below which a specification is neutral.
	ThresholdChroma float64
	// ConvergenceThreshold bounds max(|dx|, |dy|) for a converged solution.
	ConvergenceThreshold float64
	// FallbackThreshold is the looser bound accepted when iterations run out.
	FallbackThreshold float64
	// RhoThreshold is the distance from Illuminant C below which an input is
	// achromatic without iterating.
	RhoThreshold float64
	// MaxIterations caps the number of correction rounds.
	MaxIterations int
	// DampingFloor is the smallest step factor oscillation damping may reach.
	DampingFloor float64
}

// DefaultOptions returns the standard calibration.
func DefaultOptions() Options {
	return Options{
		ThresholdChroma:      0.2,
		ConvergenceThreshold: 1e-7,
		FallbackThreshold:    1e-4,
		RhoThreshold:         1e-4,
		MaxIterations:        64,
		DampingFloor:         1.0 / 16,
	}
}

// Validate reports every inconsistent setting.
func (o Options) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if math.IsNaN(v) || v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("threshold_chroma", o.ThresholdChroma)
	positive("convergence_threshold", o.ConvergenceThreshold)
	positive("fallback_threshold", o.FallbackThreshold)
	positive("rho_threshold", o.RhoThreshold)

	if o.ThresholdChroma >= 2 {
		errs = append(errs, fmt.Errorf("threshold_chroma must be below the first renotation ring (2), got %v", o.ThresholdChroma))
	}
	if o.FallbackThreshold < o.ConvergenceThreshold {
		errs = append(errs, fmt.Errorf("fallback_threshold %v is tighter than convergence_threshold %v", o.FallbackThreshold, o.ConvergenceThreshold))
	}
	if o.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("max_iterations must be at least 1, got %d", o.MaxIterations))
	}
	if !(o.DampingFloor > 0 && o.DampingFloor <= 1) {
		errs = append(errs, fmt.Errorf("damping_floor must be in (0, 1], got %v", o.DampingFloor))
	}
	return errors.Join(errs...)
}
