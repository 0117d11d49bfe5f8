// Package core: node lifecycle and lookup methods.

package core

// AddNode inserts a new node with the given name and returns its index.
// Indices follow creation order: the first node gets 0, the next 1, and so on.
// Returns ErrEmptyNodeName for the empty string and ErrDuplicateNode when the
// name is already taken.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string) (int, error) {
	if name == "" {
		return NotFound, ErrEmptyNodeName
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nameToIndex[name]; exists {
		return NotFound, ErrDuplicateNode
	}

	return g.addNodeLocked(name), nil
}

// FindNode returns the index of the node with the given name,
// or NotFound if no such node exists. Never fails.
// Complexity: O(1).
func (g *Graph) FindNode(name string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.findNodeLocked(name)
}

// FindOrAddNode returns the index of the named node, creating it first when
// absent. The empty name cannot be created and yields NotFound.
// Complexity: O(1) amortized.
func (g *Graph) FindOrAddNode(name string) int {
	if name == "" {
		return NotFound
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.findOrAddNodeLocked(name)
}

// Node returns the node stored at idx. The second result is false when idx
// is out of range. Treat the returned pointer as read-only.
// Complexity: O(1).
func (g *Graph) Node(idx int) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.nodes) {
		return nil, false
	}

	return g.nodes[idx], true
}

// Name returns the name of the node stored at idx.
// The second result is false when idx is out of range.
// Complexity: O(1).
func (g *Graph) Name(idx int) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.nodes) {
		return "", false
	}

	return g.nodes[idx].Name, true
}

// Names returns all node names in creation (index) order.
// Complexity: O(V).
func (g *Graph) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Name
	}

	return out
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// -----------------------------------------------------------------------------
// Internal helpers (callers hold the appropriate lock).
// -----------------------------------------------------------------------------

// addNodeLocked appends a node and indexes its name. Requires write lock.
func (g *Graph) addNodeLocked(name string) int {
	idx := len(g.nodes)
	g.nodes = append(g.nodes, &Node{Name: name, links: make(map[int]*Link)})
	g.nameToIndex[name] = idx

	return idx
}

// findNodeLocked resolves a name under any lock.
func (g *Graph) findNodeLocked(name string) int {
	if idx, ok := g.nameToIndex[name]; ok {
		return idx
	}

	return NotFound
}

// findOrAddNodeLocked resolves or creates under the write lock.
func (g *Graph) findOrAddNodeLocked(name string) int {
	if idx, ok := g.nameToIndex[name]; ok {
		return idx
	}

	return g.addNodeLocked(name)
}
