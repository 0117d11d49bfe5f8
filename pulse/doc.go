// Package pulse provides a generic pulse search engine for constrained
// path-finding on attribute-weighted directed graphs.
//
// Overview:
//
//   - A "pulse" is a partial path from the source carrying accumulated
//     attribute totals (PathInfo). Pulses propagate recursively from node to
//     node; at each node a chain of pruning strategies decides whether the
//     pulse survives, dies, or (as a side effect) improves the incumbent.
//   - The engine is strategy-driven: accumulation (InfoUpdateFunc), successor
//     ordering (OrderFunc), pruning (PruneFunc), and continuation scoring
//     (ScoreFunc) are all supplied by the caller. The engine itself never
//     interprets attribute values; it only moves them around.
//   - Preprocessing computes, per configured criterion, the minimum
//     cost-to-target vector over the whole graph (one backward Dijkstra pass
//     per criterion, run concurrently). Pruners read these bounds through
//     DeterministicBound and RandomBound to discard hopeless pulses early.
//
// Search mechanics:
//
//   - Run seeds one pulse at the source with zero-valued accumulators for
//     every tracked weight, then calls the pruners, commits the node to the
//     path, and expands toward successors in strategy order, skipping nodes
//     already on the path (paths stay simple).
//   - Recursive expansion stops when the depth budget (MaxDepth) is spent.
//     Reaching the target is never depth-gated: a pulse arriving at the
//     target completes even at the deepest level.
//   - Completed paths are scored and parked on a min-heap rather than
//     returned. After the initial propagation, Run drains the heap in score
//     order; each parked path resumes expansion from its final node with a
//     fresh depth budget, again skipping nodes already on the path. Since the
//     target is on the path, resumed pulses never complete again; their
//     extensions are seen only by the pruners, which may keep tightening the
//     incumbent. On a target with no outgoing links the whole phase is a
//     no-op beyond the pops themselves.
//   - The search result is the incumbent: whatever best path the pruning
//     strategies recorded via SetBest. An engine whose pruners never call
//     SetBest returns an empty path with a +Inf objective.
//
// Determinism:
//
//   - For a fixed graph, parameters, and strategy set, Run visits pulses in
//     a reproducible order: successors sort by Order value with the node
//     index as tie-break, and equal continuation scores pop in insertion
//     order.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: Parameters.Graph is nil.
//   - ErrNodeNotFound: Source or Target is outside the graph's node range.
//   - ErrNegativeDepth: MaxDepth is negative.
//   - ErrMissingStrategy: InfoUpdate, Order, or Score is nil.
//   - ErrInvalidWeights: a preprocessing weight names an attribute absent
//     from the graph's link schema.
//   - ErrUnreachableTarget: during Preprocess, the target is unreachable
//     from the source under some criterion.
//   - ErrNotPreprocessed: Run was called before a successful Preprocess.
//
// API reference:
//
//	func New(params Parameters) (*Pulse, error)
//	func (p *Pulse) Preprocess(ctx context.Context) error
//	func (p *Pulse) Run(opts ...RunOption) (*Result, error)
//
//	  - Parameters bundles the graph, endpoints, constants, depth budget,
//	    tracked weights, preprocessing weights, and the four strategies.
//	  - WithInitialIncumbent(path, objective) seeds Run with a known
//	    feasible path so pruning starts tight.
//	  - Result carries the best path, its objective, and Stats (pulses
//	    propagated, pruned, completed, and resumed).
//
// Strategy-facing accessors, usable inside strategy callbacks:
//
//   - Graph, Source, Target, MaxDepth, Constant, Constants.
//   - DeterministicBound(key, node), RandomBound(randVar, key, node):
//     preprocessed cost-to-target bounds, +Inf when absent.
//   - Best, BestObjective, SetBest: incumbent access and replacement.
//
// Thread safety:
//
//   - A Pulse engine is not safe for concurrent use. Preprocess parallelizes
//     internally across criteria; Run itself is single-threaded. Run may be
//     called repeatedly on one engine, each call resetting the incumbent,
//     queue, and statistics.
//   - Sibling branches share no mutable path state, so a parallel propagation
//     would only need to guard the incumbent and the continuation queue. The
//     engine keeps the plain recursive form.
//
// See also:
//
//   - core.Graph: graph construction and link attribute storage.
//   - dijkstra.CostsToTarget: the bound computation behind Preprocess.
//   - sarp: ready-made strategies for the stochastic alpha-reliable
//     shortest-path problem.
package pulse
