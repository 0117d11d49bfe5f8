// Package sarp: the four pulse strategies for alpha-reliable search.
//
// The feasibility pruner kills pulses whose optimistic arrival distribution
// already violates the reliability constraint; the bounds pruner kills pulses
// that cannot beat the incumbent cost and records improvements found at the
// target. Ordering and scoring both follow the preprocessed cost bound, so
// the search always walks the most promising corridor first.

package sarp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/EstebanLeiva/pulsekit/core"
	"github.com/EstebanLeiva/pulsekit/pulse"
)

// InfoUpdate returns the accumulation strategy: it adds the traversed link's
// cost, time mean, and time variance onto the pulse accumulators. Sums of
// independent normals stay normal, so the two moments fully describe the
// partial path's arrival distribution.
func InfoUpdate(cfg Config) pulse.InfoUpdateFunc {
	cfg = cfg.withDefaults()

	return func(g *core.Graph, from, to int, _ []int,
		det map[string]float64, random map[string]map[string]float64,
	) (map[string]float64, map[string]map[string]float64) {
		link, ok := g.Link(from, to)
		if !ok {
			return det, random
		}
		det[cfg.CostKey] += link.Deterministic[cfg.CostKey]
		random[cfg.TimeVar][cfg.MeanKey] += link.Random[cfg.TimeVar][cfg.MeanKey]
		random[cfg.TimeVar][cfg.VarianceKey] += link.Random[cfg.TimeVar][cfg.VarianceKey]

		return det, random
	}
}

// Order returns the exploration strategy: successors sort by their
// preprocessed cost-to-target bound, cheapest completion first.
func Order(cfg Config) pulse.OrderFunc {
	cfg = cfg.withDefaults()

	return func(p *pulse.Pulse, node int) float64 {
		return p.DeterministicBound(cfg.CostKey, node)
	}
}

// Score returns the continuation-queue strategy: completed paths rank by the
// cost bound at their final node.
func Score(cfg Config) pulse.ScoreFunc {
	cfg = cfg.withDefaults()

	return func(p *pulse.Pulse, info *pulse.PathInfo) float64 {
		return p.DeterministicBound(cfg.CostKey, info.Last())
	}
}

// FeasibilityPruner returns the chance-constraint pruner. For each pulse it
// forms the best-case arrival distribution, the accumulated moments plus the
// preprocessed minimum mean and variance to the target, and prunes when even
// that optimistic distribution misses the deadline with probability above
// 1-alpha. When the optimistic mean already exceeds TMax, any alpha above
// one half is unattainable.
//
// The pruner reads TMax and alpha from the engine constants (ConstTMax,
// ConstAlpha) and panics if either is missing.
func FeasibilityPruner(cfg Config) pulse.PruneFunc {
	cfg = cfg.withDefaults()

	return func(p *pulse.Pulse, node int, info *pulse.PathInfo) bool {
		var (
			tMax  = mustConstant(p, ConstTMax)
			alpha = mustConstant(p, ConstAlpha)
			times = info.Random[cfg.TimeVar]
		)
		mean := times[cfg.MeanKey] + p.RandomBound(cfg.TimeVar, cfg.MeanKey, node)
		variance := times[cfg.VarianceKey] + p.RandomBound(cfg.TimeVar, cfg.VarianceKey, node)

		if prob := arrivalProbability(tMax, mean, variance); tMax >= mean && prob < alpha {
			return true
		}
		if tMax < mean && alpha > 0.5 {
			return true
		}

		return false
	}
}

// BoundsPruner returns the cost pruner. A pulse dies when its accumulated
// cost plus the preprocessed bound cannot undercut the incumbent; a pulse
// reaching the target below the incumbent replaces it as a side effect and
// survives, so the engine can park the completed path for continuation.
func BoundsPruner(cfg Config) pulse.PruneFunc {
	cfg = cfg.withDefaults()

	return func(p *pulse.Pulse, node int, info *pulse.PathInfo) bool {
		cost := info.Deterministic[cfg.CostKey]
		if cost+p.DeterministicBound(cfg.CostKey, node) > p.BestObjective() {
			return true
		}
		if node == p.Target() && cost < p.BestObjective() {
			best := make([]int, 0, len(info.Path)+1)
			best = append(best, info.Path...)
			best = append(best, node)
			p.SetBest(best, cost)
		}

		return false
	}
}

// arrivalProbability returns P(T <= tMax) for T ~ Normal(mean, variance).
// Zero variance degenerates to a point mass at mean.
func arrivalProbability(tMax, mean, variance float64) float64 {
	if variance <= 0 {
		if tMax >= mean {
			return 1
		}

		return 0
	}
	dist := distuv.Normal{Mu: mean, Sigma: math.Sqrt(variance)}

	return dist.CDF(tMax)
}

// mustConstant reads a required engine constant.
func mustConstant(p *pulse.Pulse, name string) float64 {
	v, ok := p.Constant(name)
	if !ok {
		panic(fmt.Sprintf("sarp: constant %q not configured; assemble with sarp.Parameters or set pulse.Parameters.Constants", name))
	}

	return v
}
