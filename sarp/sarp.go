// Package sarp: problem assembly and path diagnostics.

package sarp

import (
	"fmt"

	"github.com/EstebanLeiva/pulsekit/core"
	"github.com/EstebanLeiva/pulsekit/pulse"
)

// Parameters assembles a complete pulse.Parameters for an alpha-reliable
// shortest-path instance on g: tracked and preprocessed weights, problem
// constants, and the four strategies, all derived from cfg.
//
// Endpoint and depth validation is left to pulse.New. Parameters panics when
// cfg.Alpha lies outside (0, 1); a reliability level is a probability, and
// the boundary values make the chance constraint vacuous or unsatisfiable.
func Parameters(g *core.Graph, source, target, maxDepth int, cfg Config) pulse.Parameters {
	cfg = cfg.withDefaults()
	if cfg.Alpha <= 0 || cfg.Alpha >= 1 {
		panic(fmt.Sprintf("sarp: alpha must lie in (0, 1), got %v", cfg.Alpha))
	}

	return pulse.Parameters{
		Graph:  g,
		Source: source,
		Target: target,
		Constants: map[string]float64{
			ConstTMax:  cfg.TMax,
			ConstAlpha: cfg.Alpha,
		},
		MaxDepth:                 maxDepth,
		DeterministicWeights:     []string{cfg.CostKey},
		RandomWeights:            map[string][]string{cfg.TimeVar: {cfg.MeanKey, cfg.VarianceKey}},
		PrepDeterministicWeights: []string{cfg.CostKey},
		PrepRandomWeights:        map[string][]string{cfg.TimeVar: {cfg.MeanKey, cfg.VarianceKey}},
		InfoUpdate:               InfoUpdate(cfg),
		Order:                    Order(cfg),
		Score:                    Score(cfg),
		Pruners: []pulse.PruneFunc{
			FeasibilityPruner(cfg),
			BoundsPruner(cfg),
		},
	}
}

// PathDistribution sums the time distribution along path: the mean and
// variance of the total travel time under link independence. It returns
// ErrBrokenPath when consecutive path nodes are not linked in g.
func PathDistribution(g *core.Graph, cfg Config, path []int) (mean, variance float64, err error) {
	cfg = cfg.withDefaults()
	for i := 0; i+1 < len(path); i++ {
		link, ok := g.Link(path[i], path[i+1])
		if !ok {
			return 0, 0, fmt.Errorf("%w: %d→%d", ErrBrokenPath, path[i], path[i+1])
		}
		mean += link.Random[cfg.TimeVar][cfg.MeanKey]
		variance += link.Random[cfg.TimeVar][cfg.VarianceKey]
	}

	return mean, variance, nil
}

// Reliability returns the probability that path completes within cfg.TMax.
func Reliability(g *core.Graph, cfg Config, path []int) (float64, error) {
	mean, variance, err := PathDistribution(g, cfg, path)
	if err != nil {
		return 0, err
	}

	return arrivalProbability(cfg.TMax, mean, variance), nil
}
