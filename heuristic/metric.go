// SPDX-License-Identifier: MIT
//
// File: metric.go
// Role: planar distance heuristics over node coordinates.

package heuristic

import (
	"math"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/core"
)

// Locator returns the planar coordinates of a node.
// ok == false makes the metric heuristics estimate 0 for that pair.
type Locator[N comparable] func(node N) (x, y float64, ok bool)

// metric builds a heuristic from a distance function over |dx|, |dy|.
func metric[N comparable, C core.Cost](loc Locator[N], unitCost float64, dist func(dx, dy float64) float64) astar.HeuristicFunc[N, C] {
	return func(node, destination N) C {
		x1, y1, ok1 := loc(node)
		x2, y2, ok2 := loc(destination)
		if !ok1 || !ok2 {
			return 0
		}

		return C(dist(math.Abs(x1-x2), math.Abs(y1-y2)) * unitCost)
	}
}

// Manhattan estimates unitCost × (|dx| + |dy|).
func Manhattan[N comparable, C core.Cost](loc Locator[N], unitCost float64) astar.HeuristicFunc[N, C] {
	return metric[N, C](loc, unitCost, func(dx, dy float64) float64 {
		return dx + dy
	})
}

// Euclidean estimates unitCost × √(dx² + dy²).
func Euclidean[N comparable, C core.Cost](loc Locator[N], unitCost float64) astar.HeuristicFunc[N, C] {
	return metric[N, C](loc, unitCost, math.Hypot)
}

// Chebyshev estimates unitCost × max(|dx|, |dy|).
func Chebyshev[N comparable, C core.Cost](loc Locator[N], unitCost float64) astar.HeuristicFunc[N, C] {
	return metric[N, C](loc, unitCost, math.Max)
}

// Octile estimates unitCost × (max + (√2 − 1)·min) of |dx|, |dy|.
func Octile[N comparable, C core.Cost](loc Locator[N], unitCost float64) astar.HeuristicFunc[N, C] {
	return metric[N, C](loc, unitCost, func(dx, dy float64) float64 {
		lo, hi := math.Min(dx, dy), math.Max(dx, dy)
		return hi + (math.Sqrt2-1)*lo
	})
}
