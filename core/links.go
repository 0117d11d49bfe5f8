// Package core: link lifecycle, enumeration, and schema queries.

package core

import "sort"

// AddLink connects src to dst with the given attribute maps, creating either
// endpoint on demand. At most one link exists per ordered pair: adding a link
// for an existing pair overwrites the previous payload. The maps are stored
// as-is (the graph takes ownership); nil maps act as empty attribute sets.
// Returns ErrEmptyNodeName when either endpoint name is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddLink(src, dst string, deterministic map[string]float64, random map[string]map[string]float64) error {
	if src == "" || dst == "" {
		return ErrEmptyNodeName
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	u := g.findOrAddNodeLocked(src)
	v := g.findOrAddNodeLocked(dst)
	g.nodes[u].links[v] = &Link{Deterministic: deterministic, Random: random}

	return nil
}

// Link returns the link from → to. The second result is false when either
// index is out of range or no such link exists.
// Complexity: O(1).
func (g *Graph) Link(from, to int) (*Link, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if from < 0 || from >= len(g.nodes) {
		return nil, false
	}
	l, ok := g.nodes[from].links[to]

	return l, ok
}

// HasLink reports whether a link from → to exists.
// Complexity: O(1).
func (g *Graph) HasLink(from, to int) bool {
	_, ok := g.Link(from, to)

	return ok
}

// Successors returns the destination indices of all links leaving from,
// sorted ascending for reproducible iteration. Out-of-range indices yield
// an empty slice.
// Complexity: O(d log d), where d is the out-degree.
func (g *Graph) Successors(from int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if from < 0 || from >= len(g.nodes) {
		return nil
	}
	out := make([]int, 0, len(g.nodes[from].links))
	for to := range g.nodes[from].links {
		out = append(out, to)
	}
	sort.Ints(out)

	return out
}

// Links enumerates every link as (From, To, payload), sorted by source index
// and then destination index.
// Complexity: O(E log E).
func (g *Graph) Links() []LinkInfo {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []LinkInfo
	for u, node := range g.nodes {
		for v, l := range node.links {
			out = append(out, LinkInfo{From: u, To: v, Link: l})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// LinkCount returns the total number of links.
// Complexity: O(V).
func (g *Graph) LinkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var total int
	for _, node := range g.nodes {
		total += len(node.links)
	}

	return total
}

// LinkKeys reports the attribute schema of the graph, sampled from the first
// link in index order: the sorted deterministic attribute names, and for each
// random variable its sorted parameter names. Graphs with no links yield an
// empty slice and an empty map.
//
// The sample is not validated against the remaining links; algorithms that
// require a uniform schema fail fast when a traversed link lacks a key.
// Complexity: O(A log A) for A attributes on the sampled link.
func (g *Graph) LinkKeys() ([]string, map[string][]string) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	first := g.firstLinkLocked()
	if first == nil {
		return []string{}, map[string][]string{}
	}

	detKeys := make([]string, 0, len(first.Deterministic))
	for k := range first.Deterministic {
		detKeys = append(detKeys, k)
	}
	sort.Strings(detKeys)

	randKeys := make(map[string][]string, len(first.Random))
	for name, params := range first.Random {
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		randKeys[name] = keys
	}

	return detKeys, randKeys
}

// firstLinkLocked returns the schema sample: the lowest-destination link of
// the lowest-index node that has any links. Requires at least a read lock.
func (g *Graph) firstLinkLocked() *Link {
	for _, node := range g.nodes {
		if len(node.links) == 0 {
			continue
		}
		lowest := -1
		for to := range node.links {
			if lowest < 0 || to < lowest {
				lowest = to
			}
		}

		return node.links[lowest]
	}

	return nil
}
