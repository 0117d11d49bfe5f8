// Package pulsekit finds constrained shortest paths on directed graphs with
// the pulse algorithm: recursive propagation of partial paths, steered by
// pluggable pruning, ordering, and scoring strategies.
//
// 🚀 What is pulsekit?
//
//	A thread-aware toolkit for paths that must satisfy more than one number:
//		• Core primitives: directed graphs whose links carry deterministic
//		  attributes and named random variables with distribution parameters
//		• Bounds: target-oriented Dijkstra over any link attribute,
//		  the raw material for pruning
//		• The engine: depth-bounded pulse propagation with a scored
//		  continuation queue and strategy-driven incumbent tracking
//		• SARP: ready-made strategies for the alpha-reliable shortest path
//		  (cheapest route that still meets a deadline with given probability)
//
// ✨ Why choose pulsekit?
//
//   - Strategy-driven – the engine never interprets your attributes; four
//     small functions define the whole problem
//   - Deterministic – fixed inputs explore in a reproducible order, ties
//     break by construction order
//   - Concurrent where it pays – per-criterion bound computations fan out
//     across goroutines, guarded by the graph's R/W locks
//
// Everything is organized under four subpackages:
//
//	core/     – Graph, Node, Link with deterministic + random attributes
//	dijkstra/ – minimum cost-to-target vectors and point-to-point paths
//	pulse/    – the search engine: parameters, preprocessing, Run
//	sarp/     – alpha-reliable shortest-path strategy set on gonum's normal CDF
//
// Quick ASCII example:
//
//	    [s]──cheap, slow──[a]──[t]
//	     └───costly, reliable────┘
//
//	with a deadline and a confidence level, the cheap corridor may lose.
//
// See examples/ for a complete route-planning program.
//
//	go get github.com/EstebanLeiva/pulsekit
package pulsekit
