// Package core_test verifies node lifecycle, link storage, schema sampling,
// and graph reversal.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EstebanLeiva/pulsekit/core"
)

// buildTriangle returns the A→B, A→C, B→C graph used across these tests.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddLink("A", "B",
		map[string]float64{"weight": 10},
		map[string]map[string]float64{"time": {"mu": 1, "sigma": 0.5}}))
	require.NoError(t, g.AddLink("A", "C",
		map[string]float64{"weight": 20},
		map[string]map[string]float64{"time": {"mu": 2, "sigma": 0.7}}))
	require.NoError(t, g.AddLink("B", "C",
		map[string]float64{"weight": 5},
		map[string]map[string]float64{"time": {"mu": 3, "sigma": 0.2}}))

	return g
}

func TestAddNodeAssignsCreationOrderIndices(t *testing.T) {
	g := core.NewGraph()

	idx, err := g.AddNode("A")
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	idx, err = g.AddNode("B")
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	name, ok := g.Name(0)
	require.True(t, ok)
	require.Equal(t, "A", name)
	require.Equal(t, 2, g.NodeCount())

	n, ok := g.Node(1)
	require.True(t, ok)
	require.Equal(t, "B", n.Name)
	_, ok = g.Node(99)
	require.False(t, ok)
}

func TestAddNodeRejectsEmptyAndDuplicateNames(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddNode("")
	require.ErrorIs(t, err, core.ErrEmptyNodeName)

	_, err = g.AddNode("A")
	require.NoError(t, err)
	_, err = g.AddNode("A")
	require.ErrorIs(t, err, core.ErrDuplicateNode)
}

func TestFindNode(t *testing.T) {
	g := buildTriangle(t)

	require.Equal(t, 0, g.FindNode("A"))
	require.Equal(t, 1, g.FindNode("B"))
	require.Equal(t, core.NotFound, g.FindNode("D"))
}

func TestFindOrAddNode(t *testing.T) {
	g := buildTriangle(t)

	// Existing node resolves to its original index.
	require.Equal(t, 1, g.FindOrAddNode("B"))

	// Unknown node is created with the next dense index.
	require.Equal(t, 3, g.FindOrAddNode("D"))
	name, ok := g.Name(3)
	require.True(t, ok)
	require.Equal(t, "D", name)

	// The empty name is never created.
	require.Equal(t, core.NotFound, g.FindOrAddNode(""))
}

func TestAddLinkCreatesEndpointsAndStoresAttributes(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddLink("A", "B",
		map[string]float64{"weight": 15},
		map[string]map[string]float64{"time": {"mu": 1.5, "sigma": 0.6}}))

	u, v := g.FindNode("A"), g.FindNode("B")
	require.NotEqual(t, core.NotFound, u)
	require.NotEqual(t, core.NotFound, v)

	l, ok := g.Link(u, v)
	require.True(t, ok)
	require.Equal(t, 15.0, l.Deterministic["weight"])
	require.Equal(t, 1.5, l.Random["time"]["mu"])
	require.True(t, g.HasLink(u, v))
	require.False(t, g.HasLink(v, u))
}

func TestAddLinkOverwritesExistingPair(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddLink("A", "B", map[string]float64{"weight": 1}, nil))
	require.NoError(t, g.AddLink("A", "B", map[string]float64{"weight": 9}, nil))

	l, ok := g.Link(g.FindNode("A"), g.FindNode("B"))
	require.True(t, ok)
	require.Equal(t, 9.0, l.Deterministic["weight"])
	require.Equal(t, 1, g.LinkCount())
}

func TestAddLinkRejectsEmptyEndpointNames(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddLink("", "B", nil, nil), core.ErrEmptyNodeName)
	require.ErrorIs(t, g.AddLink("A", "", nil, nil), core.ErrEmptyNodeName)
	require.Equal(t, 0, g.NodeCount())
}

func TestLinksEnumeratesSortedPairs(t *testing.T) {
	g := buildTriangle(t)

	links := g.Links()
	require.Len(t, links, 3)

	// (0,1), (0,2), (1,2) in order.
	require.Equal(t, 0, links[0].From)
	require.Equal(t, 1, links[0].To)
	require.Equal(t, 10.0, links[0].Link.Deterministic["weight"])
	require.Equal(t, 0, links[1].From)
	require.Equal(t, 2, links[1].To)
	require.Equal(t, 1, links[2].From)
	require.Equal(t, 2, links[2].To)
	require.Equal(t, 0.2, links[2].Link.Random["time"]["sigma"])
}

func TestSuccessorsSorted(t *testing.T) {
	g := buildTriangle(t)

	require.Equal(t, []int{1, 2}, g.Successors(0))
	require.Equal(t, []int{2}, g.Successors(1))
	require.Empty(t, g.Successors(2))
	require.Empty(t, g.Successors(99))
}

func TestLinkKeys(t *testing.T) {
	g := buildTriangle(t)

	detKeys, randKeys := g.LinkKeys()
	require.Equal(t, []string{"weight"}, detKeys)
	require.Equal(t, map[string][]string{"time": {"mu", "sigma"}}, randKeys)
}

func TestLinkKeysEmptyGraph(t *testing.T) {
	g := core.NewGraph()
	detKeys, randKeys := g.LinkKeys()
	require.Empty(t, detKeys)
	require.Empty(t, randKeys)
}

func TestReversePreservesNodesAndFlipsLinks(t *testing.T) {
	g := buildTriangle(t)
	rev := g.Reverse()

	require.Equal(t, g.NodeCount(), rev.NodeCount())
	require.Equal(t, g.Names(), rev.Names())

	// A→B becomes B→A with identical attributes.
	u, v := rev.FindNode("B"), rev.FindNode("A")
	l, ok := rev.Link(u, v)
	require.True(t, ok)
	orig, _ := g.Link(g.FindNode("A"), g.FindNode("B"))
	require.Equal(t, orig.Deterministic, l.Deterministic)
	require.Equal(t, orig.Random, l.Random)
	require.False(t, rev.HasLink(v, u))
}

func TestReverseDeepCopiesAttributes(t *testing.T) {
	g := buildTriangle(t)
	rev := g.Reverse()

	// Mutating the original payload must not leak into the reversed graph.
	orig, _ := g.Link(0, 1)
	orig.Deterministic["weight"] = 999
	orig.Random["time"]["mu"] = 999

	l, ok := rev.Link(1, 0)
	require.True(t, ok)
	require.Equal(t, 10.0, l.Deterministic["weight"])
	require.Equal(t, 1.0, l.Random["time"]["mu"])
}

func TestReverseTwiceIsIsomorphic(t *testing.T) {
	g := buildTriangle(t)
	back := g.Reverse().Reverse()

	require.Equal(t, g.Names(), back.Names())
	wantLinks, gotLinks := g.Links(), back.Links()
	require.Len(t, gotLinks, len(wantLinks))
	for i := range wantLinks {
		require.Equal(t, wantLinks[i].From, gotLinks[i].From)
		require.Equal(t, wantLinks[i].To, gotLinks[i].To)
		require.Equal(t, wantLinks[i].Link.Deterministic, gotLinks[i].Link.Deterministic)
		require.Equal(t, wantLinks[i].Link.Random, gotLinks[i].Link.Random)
	}
}

func TestLinkClone(t *testing.T) {
	l := &core.Link{
		Deterministic: map[string]float64{"cost": 2},
		Random:        map[string]map[string]float64{"time": {"mean": 2, "variance": 3}},
	}
	c := l.Clone()
	c.Deterministic["cost"] = 7
	c.Random["time"]["mean"] = 7

	require.Equal(t, 2.0, l.Deterministic["cost"])
	require.Equal(t, 2.0, l.Random["time"]["mean"])
}
