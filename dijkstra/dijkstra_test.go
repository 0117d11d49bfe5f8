// Package dijkstra_test contains unit tests for target-oriented shortest
// paths: validation errors, bound vectors over deterministic and random
// attributes, point-to-point path reconstruction, and cancellation.
package dijkstra_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/EstebanLeiva/pulsekit/core"
	"github.com/EstebanLeiva/pulsekit/dijkstra"
)

// buildReferenceNetwork constructs the seven-node routing network used across
// the repository's tests. Node indices follow creation order:
// "1"=0, "2"=1, "3"=2, "4"=3, "5"=4, "s"=5, "e"=6.
func buildReferenceNetwork(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, name := range []string{"1", "2", "3", "4", "5", "s", "e"} {
		if _, err := g.AddNode(name); err != nil {
			t.Fatalf("AddNode(%q): %v", name, err)
		}
	}

	links := []struct {
		src, dst             string
		cost, mean, variance float64
	}{
		{"s", "1", 2.0, 2.0, 3.0},
		{"1", "e", 3.0, 2.0, 0.5},
		{"s", "2", 3.0, 2.0, 1.0},
		{"2", "e", 5.0, 9.0, 1.0},
		{"s", "3", 2.0, 1.0, 0.5},
		{"3", "e", 4.0, 1.0, 0.5},
		{"s", "4", 1.0, 2.0, 3.0},
		{"4", "5", 1.0, 3.0, 3.0},
		{"5", "e", 1.0, 2.0, 2.0},
	}
	for _, l := range links {
		err := g.AddLink(l.src, l.dst,
			map[string]float64{"cost": l.cost},
			map[string]map[string]float64{"time": {"mean": l.mean, "variance": l.variance}})
		if err != nil {
			t.Fatalf("AddLink(%s→%s): %v", l.src, l.dst, err)
		}
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation: errors for invalid inputs.
// ------------------------------------------------------------------------

func TestCostsToTarget_NilGraph(t *testing.T) {
	_, err := dijkstra.CostsToTarget(nil, 0, "cost")
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestCostsToTarget_EmptyCostKey(t *testing.T) {
	g := buildReferenceNetwork(t)
	_, err := dijkstra.CostsToTarget(g, 0, "")
	if !errors.Is(err, dijkstra.ErrEmptyCostKey) {
		t.Fatalf("expected ErrEmptyCostKey, got %v", err)
	}
}

func TestCostsToTarget_TargetOutOfRange(t *testing.T) {
	g := buildReferenceNetwork(t)
	for _, target := range []int{-1, g.NodeCount()} {
		_, err := dijkstra.CostsToTarget(g, target, "cost")
		if !errors.Is(err, dijkstra.ErrNodeNotFound) {
			t.Fatalf("target=%d: expected ErrNodeNotFound, got %v", target, err)
		}
	}
}

func TestPathBetween_StartOutOfRange(t *testing.T) {
	g := buildReferenceNetwork(t)
	_, _, err := dijkstra.PathBetween(g, 99, g.FindNode("e"), "cost")
	if !errors.Is(err, dijkstra.ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Bound vectors: costs toward the target across both attribute kinds.
// ------------------------------------------------------------------------

func TestCostsToTarget_DeterministicCost(t *testing.T) {
	g := buildReferenceNetwork(t)
	target := g.FindNode("e")

	costs, err := dijkstra.CostsToTarget(g, target, "cost")
	if err != nil {
		t.Fatalf("CostsToTarget: %v", err)
	}
	want := []float64{3.0, 5.0, 4.0, 2.0, 1.0, 3.0, 0.0}
	if len(costs) != g.NodeCount() {
		t.Fatalf("expected %d entries, got %d", g.NodeCount(), len(costs))
	}
	for i, c := range costs {
		if c != want[i] {
			t.Errorf("cost mismatch at node %d: expected %v, got %v", i, want[i], c)
		}
	}
}

func TestCostsToTarget_RandomMean(t *testing.T) {
	g := buildReferenceNetwork(t)
	target := g.FindNode("e")

	means, err := dijkstra.CostsToTarget(g, target, "mean", dijkstra.WithRandVar("time"))
	if err != nil {
		t.Fatalf("CostsToTarget: %v", err)
	}
	want := []float64{2.0, 9.0, 1.0, 5.0, 2.0, 2.0, 0.0}
	for i, m := range means {
		if m != want[i] {
			t.Errorf("mean mismatch at node %d: expected %v, got %v", i, want[i], m)
		}
	}
}

func TestCostsToTarget_UnreachableNodeKeepsInfinity(t *testing.T) {
	g := buildReferenceNetwork(t)
	if _, err := g.AddNode("island"); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	costs, err := dijkstra.CostsToTarget(g, g.FindNode("e"), "cost")
	if err != nil {
		t.Fatalf("CostsToTarget: %v", err)
	}
	if !math.IsInf(costs[g.FindNode("island")], 1) {
		t.Fatalf("expected +Inf for unreachable node, got %v", costs[g.FindNode("island")])
	}
}

// ------------------------------------------------------------------------
// 3. Point-to-point paths.
// ------------------------------------------------------------------------

func TestPathBetween_ForwardPathAndCost(t *testing.T) {
	g := buildReferenceNetwork(t)
	start, target := g.FindNode("s"), g.FindNode("e")

	path, cost, err := dijkstra.PathBetween(g, start, target, "cost")
	if err != nil {
		t.Fatalf("PathBetween: %v", err)
	}

	want := []int{5, 3, 4, 6} // s → "4" → "5" → e
	if len(path) != len(want) {
		t.Fatalf("path mismatch: expected %v, got %v", want, path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path mismatch: expected %v, got %v", want, path)
		}
	}

	// The reported cost must equal the sum of link costs along the path...
	var sum float64
	for i := 0; i < len(path)-1; i++ {
		l, ok := g.Link(path[i], path[i+1])
		if !ok {
			t.Fatalf("missing link %d→%d on returned path", path[i], path[i+1])
		}
		sum += l.Deterministic["cost"]
	}
	if cost != sum {
		t.Fatalf("cost mismatch: path sums to %v, got %v", sum, cost)
	}

	// ...and the bound vector entry for the start node.
	costs, err := dijkstra.CostsToTarget(g, target, "cost")
	if err != nil {
		t.Fatalf("CostsToTarget: %v", err)
	}
	if costs[start] != cost {
		t.Fatalf("expected start bound %v to match path cost %v", costs[start], cost)
	}
}

func TestPathBetween_StartEqualsTarget(t *testing.T) {
	g := buildReferenceNetwork(t)
	e := g.FindNode("e")

	path, cost, err := dijkstra.PathBetween(g, e, e, "cost")
	if err != nil {
		t.Fatalf("PathBetween: %v", err)
	}
	if len(path) != 1 || path[0] != e {
		t.Fatalf("expected degenerate path [%d], got %v", e, path)
	}
	if cost != 0 {
		t.Fatalf("expected zero cost, got %v", cost)
	}
}

func TestPathBetween_Unreachable(t *testing.T) {
	g := buildReferenceNetwork(t)
	if _, err := g.AddNode("island"); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	path, cost, err := dijkstra.PathBetween(g, g.FindNode("island"), g.FindNode("e"), "cost")
	if err != nil {
		t.Fatalf("unreachability must not be an error, got %v", err)
	}
	if len(path) != 0 {
		t.Fatalf("expected empty path, got %v", path)
	}
	if !math.IsInf(cost, 1) {
		t.Fatalf("expected +Inf cost, got %v", cost)
	}
}

// ------------------------------------------------------------------------
// 4. Weight resolution failures and cancellation.
// ------------------------------------------------------------------------

func TestCostsToTarget_MissingAttribute(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddLink("A", "B", map[string]float64{"cost": 1}, nil)
	_ = g.AddLink("B", "C", map[string]float64{"distance": 1}, nil)

	_, err := dijkstra.CostsToTarget(g, g.FindNode("C"), "cost")
	if !errors.Is(err, dijkstra.ErrAttributeNotFound) {
		t.Fatalf("expected ErrAttributeNotFound, got %v", err)
	}
}

func TestCostsToTarget_MissingRandVar(t *testing.T) {
	g := buildReferenceNetwork(t)
	_, err := dijkstra.CostsToTarget(g, g.FindNode("e"), "mean", dijkstra.WithRandVar("speed"))
	if !errors.Is(err, dijkstra.ErrAttributeNotFound) {
		t.Fatalf("expected ErrAttributeNotFound, got %v", err)
	}
}

func TestCostsToTarget_NegativeWeight(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddLink("A", "B", map[string]float64{"cost": -1}, nil)

	_, err := dijkstra.CostsToTarget(g, g.FindNode("B"), "cost")
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("expected ErrNegativeWeight, got %v", err)
	}
}

func TestCostsToTarget_ContextCanceled(t *testing.T) {
	g := buildReferenceNetwork(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dijkstra.CostsToTarget(g, g.FindNode("e"), "cost", dijkstra.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
