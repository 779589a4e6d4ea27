// Package astar implements A* shortest-path search over any weighted graph
// that can enumerate outgoing edges, guided by a caller-supplied heuristic.
//
// Overview:
//
//   - FindPath computes a least-cost path from a source node to a destination
//     node. The frontier is a min-heap ordered by f = g + h, where g is the
//     best known cost from the source and h is the heuristic estimate of the
//     remaining cost to the destination.
//   - With a heuristic that is identically zero the search is exactly
//     Dijkstra's algorithm stopped at the destination.
//   - With an admissible heuristic (never overestimates) the returned path is
//     optimal. With an inadmissible one the result is the best path found
//     under that heuristic; closed nodes are reopened whenever a strictly
//     cheaper route to them is discovered, so late improvements are never
//     lost.
//
// Frontier order (total, deterministic):
//
//	1. smaller f first
//	2. on equal f, smaller g first (prefer already-confirmed cheap prefixes)
//	3. on equal f and g, earlier insertion first (FIFO among ties)
//
// Identical graph + heuristic + endpoints therefore always produce the same
// path, provided the graph enumerates edges deterministically (core.Graph
// does: insertion order).
//
// Per-search state:
//
//	Each call owns a private arena keyed by node: g, cached h, f, predecessor
//	and NodeStatus (Unvisited / Open / Closed). Nothing is stored on the graph,
//	so any number of searches may run concurrently over one graph that is not
//	being mutated. The heuristic is queried at most once per node per search.
//
// Outcomes:
//
//   - StatusFound:     Path (source … destination inclusive) and TotalCost.
//   - StatusNoPath:    the frontier was exhausted. Not an error.
//   - StatusCancelled: ctx was done at the start of a loop iteration. Not an
//     error, and no partial path is returned.
//
// Errors (sentinel):
//
//   - ErrNilGraph / ErrNilHeuristic: missing collaborator.
//   - ErrUnknownNode:      source or destination not in the graph; raised
//     before any search state is allocated. Also matches core.ErrUnknownNode.
//   - ErrInvalidHeuristic: an estimate was negative, NaN or infinite, or an
//     integer g + h would overflow C.
//   - ErrInvalidCost:      an edge cost was NaN or infinite, or an integer g
//     would overflow C.
//   - ErrExpansionLimit:   WithMaxExpansions budget exhausted.
//   - ErrOptionViolation:  an option received a meaningless value.
//
// Edge costs are not checked for sign: negative costs are accepted but A*
// makes no optimality or termination promise on graphs that contain them
// (negative cycles in particular can reopen nodes forever; bound such
// searches with WithMaxExpansions).
//
// Complexity:
//
//   - Time:  O((V + E) log E) with a consistent heuristic; reopening under an
//     inconsistent heuristic can expand a node more than once.
//   - Space: O(V + E) for the arena and the lazy-deletion heap.
//
// Example:
//
//	g := core.NewGraph[string, int]()
//	... // AddNode / AddEdge
//	res, err := astar.FindPath(ctx, g, heuristic.Zero[string, int](), "A", "D")
//	if err != nil {
//	    return err
//	}
//	if res.Found() {
//	    fmt.Println(res.Path, res.TotalCost)
//	}
package astar
