// Package pulse: strategy signatures, engine configuration, path state,
// sentinel errors, and result types for the pulse search engine.
package pulse

import (
	"errors"

	"github.com/EstebanLeiva/pulsekit/core"
)

// Sentinel errors returned by this package.
var (
	// ErrNilGraph indicates that Parameters.Graph is nil.
	ErrNilGraph = errors.New("pulse: graph is nil")

	// ErrNodeNotFound indicates a source or target index outside the
	// graph's dense range.
	ErrNodeNotFound = errors.New("pulse: node index out of range")

	// ErrNegativeDepth indicates Parameters.MaxDepth < 0.
	ErrNegativeDepth = errors.New("pulse: max depth must be non-negative")

	// ErrMissingStrategy indicates a required strategy function is nil.
	ErrMissingStrategy = errors.New("pulse: required strategy function is nil")

	// ErrInvalidWeights indicates a preprocessing weight name that is not
	// part of the graph's link attribute schema.
	ErrInvalidWeights = errors.New("pulse: preprocessing weight not in graph schema")

	// ErrUnreachableTarget indicates preprocessing found no path from the
	// source to the target under some requested criterion.
	ErrUnreachableTarget = errors.New("pulse: target not reachable from source")

	// ErrNotPreprocessed indicates Run was called before a successful
	// Preprocess.
	ErrNotPreprocessed = errors.New("pulse: preprocessing has not been run")
)

// InfoUpdateFunc extends a path's accumulators across one link.
//
// The engine calls it once per candidate expansion with from → to, the path
// up to and including from (to is not appended yet), and fresh deep copies
// of the deterministic and random accumulator maps. The function adds the
// link's contribution and returns the maps to attach to the extended path;
// mutating the passed maps and returning them is the expected shape.
type InfoUpdateFunc func(g *core.Graph, from, to int, path []int,
	deterministic map[string]float64,
	random map[string]map[string]float64) (map[string]float64, map[string]map[string]float64)

// OrderFunc ranks a candidate node for expansion. Candidates are visited in
// ascending value order; equal values fall back to ascending node index, so
// exploration is fully deterministic.
type OrderFunc func(p *Pulse, node int) float64

// PruneFunc decides whether to abandon the pulse arriving at node with the
// given accumulated state. info.Path does not yet contain node. Pruners run
// in Parameters order and short-circuit on the first true.
//
// A pruner may mutate engine state via p.SetBest even when it returns false;
// bounds-style pruners use this to record improved incumbents at the target.
type PruneFunc func(p *Pulse, node int, info *PathInfo) bool

// ScoreFunc assigns the continuation-queue priority of a path that reached
// the target (info.Path ends with the target). Lower scores resume first.
type ScoreFunc func(p *Pulse, info *PathInfo) float64

// Parameters configures a Pulse engine instance.
//
// Deterministic/RandomWeights name the accumulators the engine seeds to zero
// and threads through InfoUpdate; PrepDeterministic/PrepRandomWeights name
// the criteria Preprocess computes cost-to-target bound vectors for. The two
// sets are independent: strategies decide which of each they consume.
type Parameters struct {
	// Graph is the network to search.
	Graph *core.Graph

	// Source and Target are dense node indices in Graph.
	Source int
	Target int

	// Constants holds named problem constants readable by strategies.
	Constants map[string]float64

	// MaxDepth bounds the recursion depth of a single propagation phase.
	MaxDepth int

	// DeterministicWeights lists the deterministic accumulators to track.
	DeterministicWeights []string

	// RandomWeights maps each tracked random variable to the parameter
	// accumulators to track for it.
	RandomWeights map[string][]string

	// PrepDeterministicWeights lists deterministic bound criteria.
	PrepDeterministicWeights []string

	// PrepRandomWeights maps random variables to their bound criteria.
	PrepRandomWeights map[string][]string

	// InfoUpdate, Order, and Score are required strategy functions.
	InfoUpdate InfoUpdateFunc
	Order      OrderFunc
	Score      ScoreFunc

	// Pruners run in order on every pulse; empty means nothing is pruned.
	Pruners []PruneFunc
}

// PathInfo carries the state of one partial path under exploration: the
// node sequence and the accumulated deterministic and random attributes.
// Every expansion works on an independent deep copy, so sibling branches
// never share mutable state.
type PathInfo struct {
	// Deterministic maps accumulator name → accumulated value.
	Deterministic map[string]float64

	// Random maps random variable → parameter accumulator → value.
	Random map[string]map[string]float64

	// Path is the node index sequence walked so far.
	Path []int
}

// Clone returns a PathInfo sharing nothing with the receiver.
func (pi *PathInfo) Clone() *PathInfo {
	path := make([]int, len(pi.Path))
	copy(path, pi.Path)

	return &PathInfo{
		Deterministic: core.CloneDeterministic(pi.Deterministic),
		Random:        core.CloneRandom(pi.Random),
		Path:          path,
	}
}

// Last returns the final node of the path, or core.NotFound when empty.
func (pi *PathInfo) Last() int {
	if len(pi.Path) == 0 {
		return core.NotFound
	}

	return pi.Path[len(pi.Path)-1]
}

// Preprocessing holds the cost-to-target bound vectors computed by
// Preprocess, one per requested criterion, each indexed by node.
type Preprocessing struct {
	// Deterministic maps attribute name → bound vector.
	Deterministic map[string][]float64

	// Random maps random variable → parameter name → bound vector.
	Random map[string]map[string][]float64
}

// Stats counts search events of a single Run.
type Stats struct {
	// Propagated is the number of pulses that arrived at some node.
	Propagated int

	// Pruned is the number of pulses abandoned by a pruning function.
	Pruned int

	// Completed is the number of paths that reached the target and were
	// queued for continuation.
	Completed int

	// Resumed is the number of completed paths popped for continuation.
	Resumed int
}

// Result is the outcome of one Run.
//
// When no feasible path exists, Path is empty and Objective is +Inf; that is
// a normal result, not an error.
type Result struct {
	// Path is the best path found, source through target by node index.
	Path []int

	// Objective is the best path's objective value.
	Objective float64

	// Stats summarizes the search effort.
	Stats Stats
}

// RunOption configures a single Run invocation.
type RunOption func(*runConfig)

// runConfig collects per-Run settings.
type runConfig struct {
	initPath      []int
	initObjective float64
}

// WithInitialIncumbent seeds the run with a known feasible path and its
// objective, so bound-style pruners cut against it from the first pulse.
// The default incumbent is the empty path with a +Inf objective.
func WithInitialIncumbent(path []int, objective float64) RunOption {
	return func(c *runConfig) {
		c.initPath = path
		c.initObjective = objective
	}
}
