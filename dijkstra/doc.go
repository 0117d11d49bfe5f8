// Package dijkstra provides target-oriented shortest-path computation on
// attribute-weighted directed graphs.
//
// Overview:
//
//   - CostsToTarget computes the minimal cumulative attribute value from
//     every node to a single target in O((V + E) log V) time, where
//     V = |nodes| and E = |links|.
//   - PathBetween computes one cheapest start→target path together with its
//     cost, stopping early once the start node's cost is final.
//   - Both run Dijkstra on the reversed graph seeded at the target, so the
//     costs describe travel toward the target along original link directions.
//     That orientation is what bound-based pruning in constrained search
//     consumes: cost[v] bounds the remaining cost of any path ending at v.
//
// When to use:
//
//   - To compute the per-criterion lower-bound vectors that the pulse engine's
//     pruning, ordering, and scoring strategies read.
//   - As a plain point-to-point shortest-path query over one attribute.
//
// Key features:
//
//   - Attribute-keyed weights: any deterministic attribute by name, or any
//     parameter of a named random variable via WithRandVar ("time"/"mean",
//     "time"/"variance", …), so one search ranks paths by whichever scalar
//     the caller tracks.
//   - Functional options with DefaultOptions; WithContext for cancellation,
//     checked once per settled node.
//   - Fail-fast schema checking: the first traversed link missing the
//     requested attribute aborts with ErrAttributeNotFound naming the link.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V); each node settles at most once, each
//     relaxation may push one heap entry (lazy decrease-key).
//   - Space: O(V + E) for cost/predecessor slices and heap entries.
//   - Dense integer node indices keep the state in plain slices; no hashing
//     on the hot path beyond attribute lookup.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:          nil *core.Graph.
//   - ErrEmptyCostKey:      empty cost attribute name.
//   - ErrNodeNotFound:      target (or start) index outside 0..V-1.
//   - ErrAttributeNotFound: a traversed link lacks the requested attribute.
//   - ErrNegativeWeight:    a traversed link carries a negative weight.
//
// Unreachability is never an error: CostsToTarget leaves math.Inf(1) in the
// vector, PathBetween returns an empty path with an infinite cost.
//
// API reference:
//
//	func CostsToTarget(g *core.Graph, target int, costKey string, opts ...Option) ([]float64, error)
//	func PathBetween(g *core.Graph, start, target int, costKey string, opts ...Option) ([]int, float64, error)
//
//	  - costKey: attribute name; resolved in Link.Deterministic, or in
//	    Link.Random[randVar] when WithRandVar(randVar) is supplied.
//	  - CostsToTarget result: slice indexed by node, cost[target] == 0,
//	    math.Inf(1) for nodes that cannot reach the target.
//	  - PathBetween result: node indices start..target inclusive;
//	    [start] with cost 0 when start == target.
//
// Thread safety:
//
//   - Each call reverses the graph into a private copy, so concurrent
//     computations over the same *core.Graph are safe; mutating the graph
//     mid-call is governed by core.Graph's own locking.
//
// See also:
//
//   - core.Graph: graph construction, link attributes, reversal.
//   - pulse.Preprocess: fans per-criterion CostsToTarget runs across goroutines.
package dijkstra
