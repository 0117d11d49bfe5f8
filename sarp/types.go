// Package sarp: configuration and sentinel errors for the alpha-reliable
// shortest-path strategy set.
package sarp

import "errors"

// Default link attribute names. A zero-value Config resolves to these.
const (
	DefaultCostKey     = "cost"
	DefaultTimeVar     = "time"
	DefaultMeanKey     = "mean"
	DefaultVarianceKey = "variance"
)

// Constant names under which Parameters stores the problem constants.
// Strategies read them back through pulse.Constant, so a caller assembling
// pulse.Parameters by hand must provide both.
const (
	ConstTMax  = "T_max"
	ConstAlpha = "alpha"
)

// ErrBrokenPath indicates that a path handed to PathDistribution or
// Reliability traverses a link absent from the graph.
var ErrBrokenPath = errors.New("sarp: path traverses a missing link")

// Config names the link attributes and constraint constants of one
// alpha-reliable shortest-path instance: minimize the deterministic cost
// subject to arriving within TMax with probability at least Alpha, where
// link travel times are independent normal variables described by the
// MeanKey and VarianceKey parameters of the TimeVar random attribute.
//
// Empty key fields fall back to the package defaults. TMax and Alpha have
// no defaults; Parameters panics when Alpha is outside (0, 1).
type Config struct {
	CostKey     string
	TimeVar     string
	MeanKey     string
	VarianceKey string

	TMax  float64
	Alpha float64
}

// withDefaults resolves empty attribute names to the package defaults.
func (c Config) withDefaults() Config {
	if c.CostKey == "" {
		c.CostKey = DefaultCostKey
	}
	if c.TimeVar == "" {
		c.TimeVar = DefaultTimeVar
	}
	if c.MeanKey == "" {
		c.MeanKey = DefaultMeanKey
	}
	if c.VarianceKey == "" {
		c.VarianceKey = DefaultVarianceKey
	}

	return c
}
