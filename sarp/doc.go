// Package sarp provides ready-made pulse strategies for the alpha-reliable
// shortest-path problem: find the cheapest path whose travel time meets a
// deadline with at least a required probability.
//
// Overview:
//
//   - Each link carries a deterministic cost and a normally distributed
//     travel time given by a mean and a variance. Link times are assumed
//     independent, so a path's total time is normal with the summed mean
//     and summed variance.
//   - A path is feasible when P(time <= TMax) >= alpha. Among feasible
//     paths, the one with minimum total cost wins.
//   - The package does not search by itself; it assembles the strategy set
//     that a pulse.Pulse engine executes. Parameters produces a complete
//     pulse.Parameters, and the individual strategy constructors are
//     exported for callers who want to mix in their own pruners.
//
// Strategy roles:
//
//   - InfoUpdate accumulates cost, time mean, and time variance per link.
//   - FeasibilityPruner forms the best-case arrival distribution, the
//     accumulated moments plus the preprocessed minima to the target, and
//     prunes pulses whose optimistic reliability already falls below alpha.
//     With the optimistic mean beyond TMax, any alpha above one half is
//     hopeless. Zero total variance degenerates to a point mass: reliability
//     is one when TMax covers the mean and zero otherwise.
//   - BoundsPruner prunes pulses whose cost plus the preprocessed cost bound
//     exceeds the incumbent, and replaces the incumbent when a pulse reaches
//     the target cheaper. This pruner is what records the search result.
//   - Order and Score rank successors and completed paths by the cost bound,
//     steering the engine toward cheap completions first so the incumbent
//     tightens early.
//
// Pruner order matters: feasibility runs before bounds, so an infeasible
// path never becomes the incumbent even when it is the cheapest.
//
// Constants:
//
//   - Parameters stores TMax and Alpha in the engine constants under
//     ConstTMax and ConstAlpha. The pruners read them back at every pulse,
//     and panic when a hand-assembled engine omits them.
//
// Error handling:
//
//   - ErrBrokenPath: PathDistribution or Reliability received a path whose
//     consecutive nodes are not linked.
//   - Parameters panics when Alpha is outside (0, 1). Attribute names are
//     validated later by pulse.New against the graph schema.
//
// API reference:
//
//	func Parameters(g *core.Graph, source, target, maxDepth int, cfg Config) pulse.Parameters
//	func InfoUpdate(cfg Config) pulse.InfoUpdateFunc
//	func Order(cfg Config) pulse.OrderFunc
//	func Score(cfg Config) pulse.ScoreFunc
//	func FeasibilityPruner(cfg Config) pulse.PruneFunc
//	func BoundsPruner(cfg Config) pulse.PruneFunc
//	func PathDistribution(g *core.Graph, cfg Config, path []int) (mean, variance float64, err error)
//	func Reliability(g *core.Graph, cfg Config, path []int) (float64, error)
//
//	  - Config: attribute names (default "cost", "time", "mean", "variance")
//	    plus the TMax deadline and the alpha reliability level.
//
// Thread safety:
//
//   - The strategy closures hold no mutable state of their own; concurrency
//     is governed entirely by the engine they run in (one pulse.Pulse per
//     goroutine).
//
// See also:
//
//   - pulse: the engine these strategies drive.
//   - gonum.org/v1/gonum/stat/distuv: the normal CDF behind the
//     reliability computations.
package sarp
