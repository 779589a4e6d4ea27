// SPDX-License-Identifier: MIT
//
// File: geo.go
// Role: Position, great-circle distance and heuristic, polyline encoding.

package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s2"
	"github.com/twpayne/go-polyline"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/core"
)

// EarthRadiusMeters is the mean Earth radius used for all distances.
const EarthRadiusMeters = 6371010.0

// Sentinel errors for geo operations.
var (
	// ErrUnknownPosition indicates a node without a recorded Position.
	ErrUnknownPosition = errors.New("geo: node has no position")

	// ErrInvalidScale indicates a meters-per-cost-unit value that is not a
	// finite positive number.
	ErrInvalidScale = errors.New("geo: meters per cost unit must be finite and positive")

	// ErrEmptyIndex indicates a snap against an index without nodes.
	ErrEmptyIndex = errors.New("geo: index is empty")
)

// Position is a latitude/longitude pair in degrees.
type Position struct {
	Lat, Lon float64
}

func (p Position) latLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lon)
}

// DistanceMeters returns the great-circle distance between a and b.
func DistanceMeters(a, b Position) float64 {
	return a.latLng().Distance(b.latLng()).Radians() * EarthRadiusMeters
}

func validScale(m float64) bool {
	return m > 0 && !math.IsInf(m, 0) && !math.IsNaN(m)
}

// GreatCircle returns a heuristic estimating DistanceMeters(node, destination)
// divided by metersPerCostUnit. Nodes missing from positions estimate 0.
// The positions map is read, never copied; it must not change while searches run.
//
// Errors: ErrInvalidScale.
func GreatCircle[N comparable, C core.Cost](positions map[N]Position, metersPerCostUnit float64) (astar.HeuristicFunc[N, C], error) {
	if !validScale(metersPerCostUnit) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, metersPerCostUnit)
	}

	return func(node, destination N) C {
		a, ok1 := positions[node]
		b, ok2 := positions[destination]
		if !ok1 || !ok2 {
			return 0
		}

		return C(DistanceMeters(a, b) / metersPerCostUnit)
	}, nil
}

// EncodePath encodes the positions of path as a polyline string
// (precision 1e-5, latitude first).
//
// Errors: ErrUnknownPosition for the first node without a position.
func EncodePath[N comparable](path []N, positions map[N]Position) (string, error) {
	coords := make([][]float64, 0, len(path))
	for _, n := range path {
		p, ok := positions[n]
		if !ok {
			return "", fmt.Errorf("%w: %v", ErrUnknownPosition, n)
		}
		coords = append(coords, []float64{p.Lat, p.Lon})
	}

	return string(polyline.EncodeCoords(coords)), nil
}

// DecodePath is the inverse of EncodePath, returning the encoded positions.
func DecodePath(s string) ([]Position, error) {
	coords, _, err := polyline.DecodeCoords([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("geo: decode polyline: %w", err)
	}
	out := make([]Position, len(coords))
	for i, c := range coords {
		out[i] = Position{Lat: c[0], Lon: c[1]}
	}

	return out, nil
}
