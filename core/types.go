// Package core: type declarations for the attribute-weighted directed graph.
//
// This file declares Link, Node, Graph, LinkInfo, the NotFound sentinel,
// sentinel errors, and the NewGraph constructor. Behavior lives in nodes.go
// (node lifecycle), links.go (link lifecycle and queries), and reverse.go.
package core

import (
	"errors"
	"sync"
)

// NotFound is returned by name lookups when no node carries the given name.
const NotFound = -1

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeName indicates that a node name is the empty string.
	ErrEmptyNodeName = errors.New("core: node name is empty")

	// ErrDuplicateNode indicates AddNode was called with an existing name.
	ErrDuplicateNode = errors.New("core: node already exists")
)

// Link carries the attribute payload of one directed connection.
//
// Deterministic holds scalar attributes ("cost", "distance").
// Random holds named random variables, each mapping parameter names to
// values ("time" → {"mean": 2.0, "variance": 3.0}). The graph never
// interprets the parameters; algorithms pick them by name.
type Link struct {
	// Deterministic maps attribute name → value.
	Deterministic map[string]float64

	// Random maps random-variable name → parameter name → value.
	Random map[string]map[string]float64
}

// Clone returns a Link whose attribute maps are independent copies.
func (l *Link) Clone() *Link {
	return &Link{
		Deterministic: CloneDeterministic(l.Deterministic),
		Random:        CloneRandom(l.Random),
	}
}

// CloneDeterministic returns an independent copy of a deterministic
// attribute map. A nil map clones to nil.
func CloneDeterministic(src map[string]float64) map[string]float64 {
	if src == nil {
		return nil
	}
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}

	return dst
}

// CloneRandom returns an independent copy of a random attribute map,
// duplicating every inner parameter map. A nil map clones to nil.
func CloneRandom(src map[string]map[string]float64) map[string]map[string]float64 {
	if src == nil {
		return nil
	}
	dst := make(map[string]map[string]float64, len(src))
	for name, params := range src {
		dst[name] = CloneDeterministic(params)
	}

	return dst
}

// Node is a named vertex together with its outgoing links.
//
// Name uniquely identifies the node within its Graph. Treat returned Node
// pointers as read-only; mutating Name desynchronizes the name index.
type Node struct {
	// Name is the unique identifier for this node.
	Name string

	// links maps destination node index → link payload.
	links map[int]*Link
}

// LinkInfo pairs a link with its endpoint indices for enumeration.
type LinkInfo struct {
	// From and To are the source and destination node indices.
	From, To int

	// Link points at the live link payload (not a copy).
	Link *Link
}

// Graph is the core in-memory graph data structure.
//
// nodes is indexed by creation order; indices are dense and never reused.
// A single mu guards both the node slice and every node's link map.
type Graph struct {
	mu sync.RWMutex

	// Storage
	nodes       []*Node        // index → node, creation order
	nameToIndex map[string]int // node name → index
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:       make([]*Node, 0),
		nameToIndex: make(map[string]int),
	}
}
