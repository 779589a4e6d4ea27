// Package heuristic provides ready-made estimators for astar.
//
// Every provider implements astar.Heuristic[N, C]:
//
//   - Zero:       h ≡ 0. Admissible everywhere; turns A* into Dijkstra.
//   - Table:      per-node estimates loaded from a map (node → destination →
//     estimate). Missing pairs fall back to a configurable value (default 0).
//   - Scaled:     multiplies another heuristic by a factor ("weighted A*").
//     A factor above 1 trades optimality for fewer expansions.
//   - Max:        point-wise maximum of several heuristics. The maximum of
//     admissible heuristics is admissible and at least as informed.
//   - Manhattan, Euclidean, Chebyshev, Octile: planar distance metrics over
//     node coordinates returned by a Locator, multiplied by the minimum cost
//     of one unit of movement.
//
// Admissibility of the metric heuristics:
//
//	Manhattan  – 4-connected movement.
//	Chebyshev  – 8-connected movement where a diagonal step costs as much as
//	             an orthogonal one.
//	Octile     – 8-connected movement with diagonal cost √2.
//	Euclidean  – any-angle movement; admissible for all of the above.
//
// With integer cost types the metric value is truncated toward zero, which
// never turns an admissible estimate into an inadmissible one.
package heuristic
