// Package uniqwin defines tunable options, result types and error
// definitions for the unique-window scan.
package uniqwin

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("uniqwin: invalid option supplied")

// Option configures a Scan via functional arguments.
// If an Option is invalid (e.g. negative capacity hint), it is recorded
// internally and surfaced as ErrOptionViolation when Scan is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a scan.
type Options struct {
	// OnAdvance is called whenever the window's left edge jumps past a
	// duplicate. Receives the current position and the new start.
	OnAdvance func(pos, start int)

	// OnBest is called whenever a strictly longer window is recorded.
	// Receives the winning window's start and length.
	OnBest func(start, length int)

	// CapacityHint pre-sizes the last-seen index. A value of 0 derives
	// the hint from the input length.
	CapacityHint int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no-op hooks (OnAdvance, OnBest)
//   - capacity hint derived from the input (CapacityHint == 0)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		OnAdvance:    func(int, int) {},
		OnBest:       func(int, int) {},
		CapacityHint: 0,
		err:          nil,
	}
}

// WithOnAdvance registers a callback to run each time the window start
// advances past a duplicate.
func WithOnAdvance(fn func(pos, start int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAdvance = fn
		}
	}
}

// WithOnBest registers a callback to run each time a new best window is
// recorded. Fired only on strict improvement, so ties never re-fire.
func WithOnBest(fn func(start, length int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBest = fn
		}
	}
}

// WithCapacityHint pre-sizes the internal last-seen index to n entries.
//
//	n > 0:  size the index for n distinct symbols
//	n == 0: explicit "derive from input length"
//	n < 0:  invalid option → ErrOptionViolation
func WithCapacityHint(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: CapacityHint cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.CapacityHint = n
		}
	}
}

// Result identifies the longest duplicate-free window found by a scan:
//   - Start: index of the window's first element.
//   - Len:   number of elements in the window (0 for empty input).
type Result struct {
	Start int
	Len   int
}

// End returns the exclusive end index of the window, so that the
// winning run is seq[r.Start:r.End()].
func (r Result) End() int { return r.Start + r.Len }
