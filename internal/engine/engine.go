// Package engine converts between Munsell specifications and CIE xyY under
// Illuminant C using the renotation grid.
package engine

import (
	"errors"
	"fmt"

	"github.com/jsvensson/munsell/internal/renotation"
)

// Engine holds an immutable renotation table and the solver calibration.
// All methods are safe for concurrent use.
type Engine struct {
	table *renotation.Table
	opts  Options
}

// New returns an Engine over table.
func New(table *renotation.Table, opts Options) (*Engine, error) {
	if table == nil {
		return nil, errors.New("engine: nil renotation table")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("engine options: %w", err)
	}
	return &Engine{table: table, opts: opts}, nil
}

// Table returns the renotation table the engine interpolates.
func (e *Engine) Table() *renotation.Table {
	return e.table
}

// Options returns the solver calibration.
func (e *Engine) Options() Options {
	return e.opts
}
