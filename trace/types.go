// Package trace provides tunable options and error definitions for
// multi-hop contact tracing over a contacts.Contacts collection.
package trace

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for trace execution.
var (
	// ErrContactsNil is returned if a nil collection is passed.
	ErrContactsNil = errors.New("trace: contacts is nil")

	// ErrNoSeeds is returned when no seed agent is given.
	ErrNoSeeds = errors.New("trace: no seed agents")

	// ErrBadSeed is returned for a negative seed index.
	ErrBadSeed = errors.New("trace: negative seed index")

	// ErrUnknownLayer is returned when WithLayers names a missing layer.
	ErrUnknownLayer = errors.New("trace: unknown layer")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("trace: invalid option supplied")
)

// Option configures tracing via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Trace is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize tracing.
type Options struct {
	// Ctx allows cancellation between levels.
	Ctx context.Context

	// OnVisit is called once per reached agent, in Order. Returning an
	// error aborts the trace and propagates that error.
	OnVisit func(agent, depth int) error

	// MaxDepth, if > 0, stops expanding after this many hops.
	// A value of 0 disables the limit.
	MaxDepth int

	// Layers restricts expansion to the named layers; nil means all.
	Layers []string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no depth limit,
// all layers and a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run for every reached agent.
func WithOnVisit(fn func(agent, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops expansion after d hops.
//
//	d > 0: at most d hops
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithLayers restricts expansion to the named layers. An empty list is an
// option violation; omit the option to use every layer.
func WithLayers(names ...string) Option {
	return func(o *Options) {
		if len(names) == 0 {
			o.err = fmt.Errorf("%w: WithLayers needs at least one layer", ErrOptionViolation)
			return
		}
		o.Layers = append([]string{}, names...)
	}
}

// Result holds the outcome of a trace.
type Result struct {
	// Order lists reached agents level by level, ascending within a level.
	Order []int

	// Depth maps each reached agent to its hop distance from the seeds.
	Depth map[int]int

	// Levels[d] holds the agents first reached after d hops, ascending.
	Levels [][]int
}

// At returns the agents reached at exactly depth d (nil when none).
func (r *Result) At(d int) []int {
	if d < 0 || d >= len(r.Levels) {
		return nil
	}

	return r.Levels[d]
}

// Within returns every agent reached in at most d hops, ascending.
func (r *Result) Within(d int) []int {
	var out []int
	for i := 0; i <= d && i < len(r.Levels); i++ {
		out = append(out, r.Levels[i]...)
	}
	sort.Ints(out)

	return out
}
