// Package pulse implements the pulse search engine: recursive, depth-bounded
// propagation of partial paths ("pulses") through a graph, driven by
// caller-supplied strategies for accumulation, ordering, pruning, and
// scoring. See doc.go for the algorithm walkthrough.
package pulse

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/EstebanLeiva/pulsekit/core"
)

// Pulse orchestrates one search instance: parameters, preprocessed bounds,
// the incumbent, and the continuation queue.
//
// A Pulse is not safe for concurrent use; create one engine per search.
// The expected call sequence is New → Preprocess → Run (Run may repeat).
type Pulse struct {
	params Parameters

	// Preprocessed bound tables; valid once preprocessed is true.
	prep         Preprocessing
	preprocessed bool

	// Incumbent: best known complete path and its objective.
	bestPath      []int
	bestObjective float64

	// Continuation queue of completed paths, keyed by strategy score.
	queue pulseQueue
	seq   uint64

	stats Stats
}

// New validates the parameters and returns a ready-to-preprocess engine.
//
// Validation is eager: node indices must be in range, MaxDepth non-negative,
// the three strategy functions non-nil, and every preprocessing weight must
// appear in the graph's link attribute schema (ErrInvalidWeights otherwise).
// Tracked accumulator names are not validated; they are opaque to the engine.
func New(params Parameters) (*Pulse, error) {
	if params.Graph == nil {
		return nil, ErrNilGraph
	}
	n := params.Graph.NodeCount()
	if params.Source < 0 || params.Source >= n {
		return nil, fmt.Errorf("%w: source %d", ErrNodeNotFound, params.Source)
	}
	if params.Target < 0 || params.Target >= n {
		return nil, fmt.Errorf("%w: target %d", ErrNodeNotFound, params.Target)
	}
	if params.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, params.MaxDepth)
	}
	if params.InfoUpdate == nil {
		return nil, fmt.Errorf("%w: InfoUpdate", ErrMissingStrategy)
	}
	if params.Order == nil {
		return nil, fmt.Errorf("%w: Order", ErrMissingStrategy)
	}
	if params.Score == nil {
		return nil, fmt.Errorf("%w: Score", ErrMissingStrategy)
	}
	if err := validatePrepWeights(params); err != nil {
		return nil, err
	}

	return &Pulse{
		params:        params,
		bestPath:      []int{},
		bestObjective: math.Inf(1),
	}, nil
}

// validatePrepWeights checks every preprocessing criterion against the
// graph's sampled link schema.
func validatePrepWeights(params Parameters) error {
	detKeys, randKeys := params.Graph.LinkKeys()

	detSet := make(map[string]struct{}, len(detKeys))
	for _, k := range detKeys {
		detSet[k] = struct{}{}
	}
	for _, k := range params.PrepDeterministicWeights {
		if _, ok := detSet[k]; !ok {
			return fmt.Errorf("%w: deterministic %q (graph has %v)", ErrInvalidWeights, k, detKeys)
		}
	}

	for randVar, keys := range params.PrepRandomWeights {
		available, ok := randKeys[randVar]
		if !ok {
			return fmt.Errorf("%w: random variable %q", ErrInvalidWeights, randVar)
		}
		availSet := make(map[string]struct{}, len(available))
		for _, k := range available {
			availSet[k] = struct{}{}
		}
		for _, k := range keys {
			if _, ok = availSet[k]; !ok {
				return fmt.Errorf("%w: random %q/%q (variable has %v)", ErrInvalidWeights, randVar, k, available)
			}
		}
	}

	return nil
}

// Run executes the search and returns the best path found.
//
// Phase one seeds a pulse at the source with zero-valued accumulators and
// propagates it recursively. Phase two drains the continuation queue: each
// completed path resumes from its last node with a fresh depth budget.
// The result is whatever incumbent the pruning strategies recorded; an empty
// path with a +Inf objective means no feasible path and is not an error.
func (p *Pulse) Run(opts ...RunOption) (*Result, error) {
	if !p.preprocessed {
		return nil, ErrNotPreprocessed
	}

	cfg := runConfig{initPath: nil, initObjective: math.Inf(1)}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Reset per-run state so Run is repeatable on one engine.
	p.SetBest(cfg.initPath, cfg.initObjective)
	p.queue = p.queue[:0]
	heap.Init(&p.queue)
	p.seq = 0
	p.stats = Stats{}

	p.propagate(p.params.Source, p.seedInfo(), 0)

	var (
		item *pulseItem
		last int
	)
	for p.queue.Len() > 0 {
		item = heap.Pop(&p.queue).(*pulseItem)
		p.stats.Resumed++
		last = item.info.Last()
		p.expand(last, item.info, 0)
	}

	best, objective := p.Best()

	return &Result{Path: best, Objective: objective, Stats: p.stats}, nil
}

// seedInfo builds the zero-valued accumulators for the tracked weights.
func (p *Pulse) seedInfo() *PathInfo {
	det := make(map[string]float64, len(p.params.DeterministicWeights))
	for _, k := range p.params.DeterministicWeights {
		det[k] = 0
	}
	random := make(map[string]map[string]float64, len(p.params.RandomWeights))
	for randVar, keys := range p.params.RandomWeights {
		inner := make(map[string]float64, len(keys))
		for _, k := range keys {
			inner[k] = 0
		}
		random[randVar] = inner
	}

	return &PathInfo{Deterministic: det, Random: random, Path: []int{}}
}

// propagate delivers one pulse to node: apply pruners, commit the node to
// the path, then either enqueue the completed path (node == target) or
// expand toward successors while the depth budget lasts.
func (p *Pulse) propagate(node int, info *PathInfo, depth int) {
	p.stats.Propagated++

	for _, prune := range p.params.Pruners {
		if prune(p, node, info) {
			p.stats.Pruned++
			return
		}
	}

	info.Path = append(info.Path, node)

	if node == p.params.Target {
		p.stats.Completed++
		p.seq++
		heap.Push(&p.queue, &pulseItem{
			score: p.params.Score(p, info),
			seq:   p.seq,
			info:  info,
		})

		return
	}

	if depth < p.params.MaxDepth {
		p.expand(node, info, depth+1)
	}
}

// expand pushes child pulses from node toward every successor not already on
// the path, in strategy order, each carrying independent accumulator copies.
func (p *Pulse) expand(node int, info *PathInfo, childDepth int) {
	for _, succ := range p.orderedSuccessors(node) {
		if containsNode(info.Path, succ) {
			continue
		}
		p.propagate(succ, p.extend(info, node, succ), childDepth)
	}
}

// extend builds the child pulse state for the link from → to: a copied path
// and deep-copied accumulators threaded through the InfoUpdate strategy.
// The path handed to InfoUpdate includes from but not yet to; to is appended
// by the child's propagate call once it survives pruning.
func (p *Pulse) extend(info *PathInfo, from, to int) *PathInfo {
	path := make([]int, len(info.Path), len(info.Path)+1)
	copy(path, info.Path)

	det, random := p.params.InfoUpdate(p.params.Graph, from, to, path,
		core.CloneDeterministic(info.Deterministic),
		core.CloneRandom(info.Random))

	return &PathInfo{Deterministic: det, Random: random, Path: path}
}

// orderedSuccessors returns node's successors sorted ascending by the Order
// strategy, with node index as the tie-break.
func (p *Pulse) orderedSuccessors(node int) []int {
	succ := p.params.Graph.Successors(node)
	if len(succ) < 2 {
		return succ
	}
	vals := make([]float64, len(succ))
	for i, v := range succ {
		vals[i] = p.params.Order(p, v)
	}
	sort.Sort(&successorOrder{nodes: succ, vals: vals})

	return succ
}

// successorOrder implements sort.Interface over parallel (node, value)
// slices: ascending value, then ascending node index for determinism.
type successorOrder struct {
	nodes []int
	vals  []float64
}

func (so *successorOrder) Len() int { return len(so.nodes) }
func (so *successorOrder) Less(i, j int) bool {
	if so.vals[i] == so.vals[j] {
		return so.nodes[i] < so.nodes[j]
	}

	return so.vals[i] < so.vals[j]
}
func (so *successorOrder) Swap(i, j int) {
	so.nodes[i], so.nodes[j] = so.nodes[j], so.nodes[i]
	so.vals[i], so.vals[j] = so.vals[j], so.vals[i]
}

// containsNode reports whether n is already on path. Paths stay short in
// depth-bounded search, so a linear scan beats per-pulse set allocation.
func containsNode(path []int, n int) bool {
	for _, v := range path {
		if v == n {
			return true
		}
	}

	return false
}

// -----------------------------------------------------------------------------
// Strategy-facing accessors
// -----------------------------------------------------------------------------

// Graph returns the graph under search.
func (p *Pulse) Graph() *core.Graph { return p.params.Graph }

// Source returns the source node index.
func (p *Pulse) Source() int { return p.params.Source }

// Target returns the target node index.
func (p *Pulse) Target() int { return p.params.Target }

// MaxDepth returns the propagation depth budget.
func (p *Pulse) MaxDepth() int { return p.params.MaxDepth }

// Constant returns the named problem constant. The second result is false
// when the constant was not configured.
func (p *Pulse) Constant(name string) (float64, bool) {
	v, ok := p.params.Constants[name]

	return v, ok
}

// Constants returns a copy of the configured constants.
func (p *Pulse) Constants() map[string]float64 {
	return core.CloneDeterministic(p.params.Constants)
}

// DeterministicBound returns the preprocessed cost-to-target bound for the
// given deterministic criterion at node. Criteria that were not preprocessed
// and out-of-range nodes yield +Inf, never a silent zero.
func (p *Pulse) DeterministicBound(key string, node int) float64 {
	vec, ok := p.prep.Deterministic[key]
	if !ok || node < 0 || node >= len(vec) {
		return math.Inf(1)
	}

	return vec[node]
}

// RandomBound returns the preprocessed cost-to-target bound for the given
// (random variable, parameter) criterion at node, with the same +Inf
// convention as DeterministicBound.
func (p *Pulse) RandomBound(randVar, key string, node int) float64 {
	params, ok := p.prep.Random[randVar]
	if !ok {
		return math.Inf(1)
	}
	vec, ok := params[key]
	if !ok || node < 0 || node >= len(vec) {
		return math.Inf(1)
	}

	return vec[node]
}

// Bounds exposes the live preprocessing tables. Treat them as read-only;
// point lookups should prefer DeterministicBound and RandomBound.
func (p *Pulse) Bounds() Preprocessing { return p.prep }

// Best returns a copy of the incumbent path and its objective.
func (p *Pulse) Best() ([]int, float64) {
	path := make([]int, len(p.bestPath))
	copy(path, p.bestPath)

	return path, p.bestObjective
}

// BestObjective returns the incumbent objective without copying the path.
// Bound-style pruners call this on every pulse.
func (p *Pulse) BestObjective() float64 { return p.bestObjective }

// SetBest records a new incumbent. The path is copied; a nil path stores
// the empty path. Strategies call this unconditionally when they decide an
// improvement was found; the engine never second-guesses them.
func (p *Pulse) SetBest(path []int, objective float64) {
	stored := make([]int, len(path))
	copy(stored, path)
	p.bestPath = stored
	p.bestObjective = objective
}
