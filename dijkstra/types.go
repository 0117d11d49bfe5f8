// Package dijkstra: sentinel errors and configuration options for
// target-oriented shortest-path computation on attribute-weighted graphs.
package dijkstra

import (
	"context"
	"errors"
)

// Sentinel errors returned by this package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyCostKey indicates that the cost attribute name is empty.
	ErrEmptyCostKey = errors.New("dijkstra: cost key is empty")

	// ErrNodeNotFound indicates a node index outside the graph's dense range.
	ErrNodeNotFound = errors.New("dijkstra: node index out of range")

	// ErrAttributeNotFound indicates a traversed link lacks the requested
	// cost attribute (or the requested random variable entirely).
	ErrAttributeNotFound = errors.New("dijkstra: link attribute not found")

	// ErrNegativeWeight indicates a negative link weight was encountered
	// during relaxation. Dijkstra requires non-negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative link weight encountered")
)

// Options configures a single shortest-path computation.
//
// RandVar – when non-empty, link weights are read from
//
//	Link.Random[RandVar][costKey] instead of Link.Deterministic[costKey],
//	so the same search ranks paths by a distribution parameter
//	("time"/"mean", "time"/"variance", …).
//
// Ctx – cancellation checked once per settled node.
type Options struct {
	RandVar string
	Ctx     context.Context
}

// Option represents a functional option for configuring the computation.
type Option func(*Options)

// WithRandVar reads link weights from the named random variable's parameter
// map rather than the deterministic map. An empty name keeps the default
// deterministic lookup.
func WithRandVar(name string) Option {
	return func(o *Options) {
		o.RandVar = name
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

// DefaultOptions returns an Options struct with the defaults: deterministic
// weight lookup and context.Background().
func DefaultOptions() Options {
	return Options{
		RandVar: "",
		Ctx:     context.Background(),
	}
}
