// SPDX-License-Identifier: MIT
//
// File: route.go
// Role: snap → search → encode convenience over an Index.

package geo

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/core"
)

// RouteResult is an astar.Result enriched with the snapped endpoints and the
// encoded polyline of the path (empty unless a path was found).
type RouteResult[N comparable, C core.Cost] struct {
	astar.Result[N, C]
	From, To N
	Polyline string
}

// Heuristic returns the GreatCircle heuristic over the indexed positions,
// using the index's meters-per-cost-unit.
func Heuristic[N comparable, C core.Cost](idx *Index[N]) astar.HeuristicFunc[N, C] {
	// scale was validated by NewIndex
	h, _ := GreatCircle[N, C](idx.positions, idx.scale)
	return h
}

// Route snaps from and to onto the nearest indexed nodes and runs A* between
// them with the great-circle heuristic.
//
// Errors: ErrEmptyIndex, any error of astar.FindPath, ErrUnknownPosition if a
// path node is not indexed.
func Route[N comparable, C core.Cost](
	ctx context.Context,
	g astar.Graph[N, C],
	idx *Index[N],
	from, to Position,
	opts ...astar.Option[N, C],
) (RouteResult[N, C], error) {
	src, ok := idx.Nearest(from)
	if !ok {
		return RouteResult[N, C]{}, ErrEmptyIndex
	}
	dst, _ := idx.Nearest(to)

	res, err := astar.FindPath(ctx, g, Heuristic[N, C](idx), src, dst, opts...)
	if err != nil {
		return RouteResult[N, C]{}, fmt.Errorf("geo: route %v→%v: %w", src, dst, err)
	}
	out := RouteResult[N, C]{Result: res, From: src, To: dst}
	if res.Found() {
		if out.Polyline, err = EncodePath(res.Path, idx.positions); err != nil {
			return RouteResult[N, C]{}, err
		}
	}

	return out, nil
}
