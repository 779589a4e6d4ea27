// Package bfs provides breadth-first search over any graph that can list a
// node's outgoing edges (core.Graph included), returning hop-count distances,
// parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks OnEnqueue and OnVisit (the latter may abort).
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Reachable(g, from, to) answers a single connectivity query.
//
// Why
//
//   - Reachability precheck before an expensive weighted search.
//   - Connected-component labelling (see gridgraph.Components).
//
// Determinism
//
//	Neighbors are enqueued in the graph's edge insertion order, so the visit
//	sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if the graph fails to list a vertex's edges.
//   - ctx.Err()               on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
