// Package pathfind is an in-memory toolkit for shortest-path search over
// generic weighted graphs, built around a deterministic A*.
//
// 🚀 What is pathfind?
//
//	A thread-safe, generic library that brings together:
//		• Core primitives: a Graph[N, C] of comparable node IDs and numeric costs
//		• A*: deterministic frontier order, reopening, cancellation, hooks
//		• Heuristics: Zero, Table, Scaled, Max and planar metrics
//		• Baselines: Dijkstra and hop-count BFS
//		• Grids: terrain maps with walls, costs and islands
//		• Geography: nearest-node snapping, great-circle heuristic, polylines
//		• I/O and telemetry: YAML documents, Prometheus metrics
//
// ✨ Why choose pathfind?
//
//   - Reproducible – equal inputs give equal paths, ties included
//   - Honest outcomes – Found, NoPath and Cancelled are results, not errors
//   - Extensible – OnExpand, OnRelax, OnReopen hooks for custom logic
//
// Everything is organized in subpackages:
//
//	core/      Graph, Edge and thread-safe primitives
//	astar/     the search
//	heuristic/ ready-made estimators
//	dijkstra/  single-source shortest paths
//	bfs/       breadth-first traversal and reachability
//	gridgraph/ 2D terrain grids as graphs
//	builder/   seeded graph generators for tests and benchmarks
//	graphio/   YAML documents
//	geo/       latitude/longitude graphs
//	metrics/   Prometheus collectors
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     1
//	    │     │
//	    C──1──D
//
//	FindPath(A, D) → [A B D], cost 2.
//
//	go get github.com/katalvlaran/pathfind
package pathfind
