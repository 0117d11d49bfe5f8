// Package dijkstra implements Dijkstra's shortest-path algorithm oriented
// toward a target node on attribute-weighted directed graphs.
//
// Both entry points run the search on the reversed graph seeded at the
// target, so the resulting costs measure travel *toward* the target along
// the original link directions. This is the orientation constrained-search
// preprocessing needs: cost[v] is an admissible bound on completing any
// partial path that currently ends at v.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per computation (lazy decrease-key heap).
//   - Space: O(V + E): cost and predecessor slices plus heap entries.
//
// Notes on implementation choices:
//
//   - Weights are validated as links are relaxed: a traversed link that
//     lacks the requested attribute fails fast with ErrAttributeNotFound,
//     and a negative weight fails with ErrNegativeWeight. Links hanging off
//     nodes the search never settles are not inspected.
//   - Stale heap entries are skipped by cost comparison rather than a
//     visited set, matching the lazy decrease-key strategy.
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/EstebanLeiva/pulsekit/core"
)

// CostsToTarget computes, for every node, the minimal cumulative value of the
// selected attribute along any path to target. The result is indexed by node:
// unreachable nodes hold math.Inf(1), the target itself holds 0.
//
// The attribute is Link.Deterministic[costKey] by default, or
// Link.Random[randVar][costKey] when WithRandVar is supplied.
//
// Errors: ErrNilGraph, ErrEmptyCostKey, ErrNodeNotFound (target out of
// range), ErrAttributeNotFound and ErrNegativeWeight during relaxation, and
// the context error when the supplied context is done.
func CostsToTarget(g *core.Graph, target int, costKey string, opts ...Option) ([]float64, error) {
	r, err := newRunner(g, target, costKey, opts)
	if err != nil {
		return nil, err
	}
	if err = r.process(stopNever); err != nil {
		return nil, err
	}

	return r.cost, nil
}

// PathBetween computes the single cheapest path from start to target and its
// cumulative attribute cost. The returned path lists node indices from start
// to target inclusive; a degenerate start == target query yields [start] with
// cost 0. When no path exists the path is empty and the cost is math.Inf(1);
// unreachability is a normal outcome, not an error.
//
// The search settles nodes outward from the target and stops early as soon
// as the start node's cost is final.
//
// Errors: as for CostsToTarget, plus ErrNodeNotFound when start is out of range.
func PathBetween(g *core.Graph, start, target int, costKey string, opts ...Option) ([]int, float64, error) {
	r, err := newRunner(g, target, costKey, opts)
	if err != nil {
		return nil, 0, err
	}
	if start < 0 || start >= len(r.cost) {
		return nil, 0, fmt.Errorf("%w: start %d", ErrNodeNotFound, start)
	}
	if err = r.process(start); err != nil {
		return nil, 0, err
	}

	// Unreached start: report the empty path with an infinite cost.
	if math.IsInf(r.cost[start], 1) {
		return []int{}, math.Inf(1), nil
	}

	// The predecessor chain of the reversed-graph search already points from
	// start toward target along original link directions, so following it
	// yields the forward path with no reversal step.
	path := make([]int, 0, len(r.cost))
	for u := start; u != noPredecessor; u = r.prev[u] {
		path = append(path, u)
	}

	return path, r.cost[start], nil
}

// stopNever disables the early-exit node of runner.process.
const stopNever = -1

// noPredecessor marks chain termination in the predecessor slice.
const noPredecessor = -1

// runner holds the mutable state for a single computation.
type runner struct {
	rev     *core.Graph // reversed input graph; the search runs on this
	costKey string
	randVar string
	ctx     context.Context

	cost []float64 // node index → best known cost to target
	prev []int     // node index → next hop toward target (noPredecessor if none)
	pq   nodePQ
}

// newRunner validates inputs, reverses the graph, and seeds the heap with
// the target at cost zero.
func newRunner(g *core.Graph, target int, costKey string, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if costKey == "" {
		return nil, ErrEmptyCostKey
	}
	n := g.NodeCount()
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d", ErrNodeNotFound, target)
	}

	r := &runner{
		rev:     g.Reverse(),
		costKey: costKey,
		randVar: cfg.RandVar,
		ctx:     cfg.Ctx,
		cost:    make([]float64, n),
		prev:    make([]int, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.cost {
		r.cost[i] = math.Inf(1)
		r.prev[i] = noPredecessor
	}
	r.cost[target] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{node: target, cost: 0})

	return r, nil
}

// process runs the main loop until the heap drains or stopAt is settled.
// stopNever disables the early exit.
func (r *runner) process(stopAt int) error {
	var item *nodeItem
	for r.pq.Len() > 0 {
		// cancellation check once per pop
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		default:
		}

		item = heap.Pop(&r.pq).(*nodeItem)

		// Skip stale entries left behind by lazy decrease-key.
		if item.cost > r.cost[item.node] {
			continue
		}

		// A fresh pop finalizes the node's cost; the early-exit node needs
		// no further relaxation.
		if item.node == stopAt {
			return nil
		}

		if err := r.relax(item.node); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each link leaving u in the reversed graph and improves
// neighbor costs where a strictly cheaper route to the target appears.
func (r *runner) relax(u int) error {
	var (
		v, i    int
		w, cand float64
		err     error
		succ    = r.rev.Successors(u)
	)
	for i = 0; i < len(succ); i++ {
		v = succ[i]
		l, _ := r.rev.Link(u, v)
		if w, err = r.linkWeight(u, v, l); err != nil {
			return err
		}
		cand = r.cost[u] + w
		if cand >= r.cost[v] {
			continue
		}
		r.cost[v] = cand
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{node: v, cost: cand})
	}

	return nil
}

// linkWeight resolves the configured attribute on one link. Errors name the
// link in its original orientation (v→u here, since r.rev is the reversal).
func (r *runner) linkWeight(u, v int, l *core.Link) (float64, error) {
	var (
		w  float64
		ok bool
	)
	if r.randVar == "" {
		w, ok = l.Deterministic[r.costKey]
	} else {
		var params map[string]float64
		if params, ok = l.Random[r.randVar]; ok {
			w, ok = params[r.costKey]
		}
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s on link %d→%d", ErrAttributeNotFound, r.attrName(), v, u)
	}
	if w < 0 {
		return 0, fmt.Errorf("%w: %s=%v on link %d→%d", ErrNegativeWeight, r.attrName(), w, v, u)
	}

	return w, nil
}

// attrName renders the configured attribute for error context.
func (r *runner) attrName() string {
	if r.randVar == "" {
		return fmt.Sprintf("%q", r.costKey)
	}

	return fmt.Sprintf("%q/%q", r.randVar, r.costKey)
}

// nodeItem represents a node and its current cost to the target.
type nodeItem struct {
	node int
	cost float64
}

// nodePQ is a min-heap of *nodeItem ordered by cost ascending, operated with
// the lazy decrease-key strategy: improved costs push duplicates and stale
// entries are ignored when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
