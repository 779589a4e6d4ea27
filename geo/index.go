// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: R-tree backed nearest-node snapping.
// Concurrency: an Index is immutable after NewIndex and safe for concurrent reads.

package geo

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dhconnelly/rtreego"
)

const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50

	// candidates pulled from the planar R-tree before great-circle refinement
	snapCandidates = 8

	pointTolerance = 1e-9
)

// entry is one distinct position stored in the R-tree; the tree works in
// (lon, lat) degrees. node is the lowest-keyed node at pos.
type entry[N comparable] struct {
	node N
	key  string
	pos  Position
}

func (e *entry[N]) Bounds() rtreego.Rect {
	return rtreego.Point{e.pos.Lon, e.pos.Lat}.ToRect(pointTolerance)
}

// Index maps positions to their nearest graph node.
type Index[N comparable] struct {
	tree      *rtreego.Rtree
	positions map[N]Position
	scale     float64
}

// IndexOption configures an Index.
type IndexOption func(*indexConfig)

type indexConfig struct {
	metersPerCostUnit float64
	err               error
}

// WithMetersPerCostUnit sets how many meters one unit of edge cost covers
// (default 1, i.e. costs are meters). Used by Heuristic and Route.
func WithMetersPerCostUnit(m float64) IndexOption {
	return func(c *indexConfig) {
		if !validScale(m) {
			c.err = fmt.Errorf("%w: %v", ErrInvalidScale, m)
			return
		}
		c.metersPerCostUnit = m
	}
}

// NewIndex builds an Index over a copy of positions.
//
// Errors: ErrInvalidScale from WithMetersPerCostUnit.
func NewIndex[N comparable](positions map[N]Position, opts ...IndexOption) (*Index[N], error) {
	cfg := indexConfig{metersPerCostUnit: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	idx := &Index[N]{
		tree:      rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren),
		positions: make(map[N]Position, len(positions)),
		scale:     cfg.metersPerCostUnit,
	}
	at := make(map[Position]*entry[N], len(positions))
	for n, p := range positions {
		idx.positions[n] = p
		key := nodeKey(n)
		if e, seen := at[p]; !seen || key < e.key {
			at[p] = &entry[N]{node: n, key: key, pos: p}
		}
	}
	entries := make([]*entry[N], 0, len(at))
	for _, e := range at {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b *entry[N]) int { return strings.Compare(a.key, b.key) })
	for _, e := range entries {
		idx.tree.Insert(e)
	}

	return idx, nil
}

// nodeKey orders nodes that would otherwise tie.
func nodeKey[N comparable](n N) string { return fmt.Sprint(n) }

// Len returns the number of indexed nodes.
func (idx *Index[N]) Len() int { return len(idx.positions) }

// Position returns the recorded position of n.
func (idx *Index[N]) Position(n N) (Position, bool) {
	p, ok := idx.positions[n]
	return p, ok
}

// Nearest returns the node closest to p by great-circle distance among the
// R-tree's planar nearest candidates. ok is false for an empty index.
// Ties, including nodes sharing a position, go to the node whose
// fmt.Sprint form sorts first.
func (idx *Index[N]) Nearest(p Position) (node N, ok bool) {
	best, bestKey := -1.0, ""
	for _, s := range idx.tree.NearestNeighbors(snapCandidates, rtreego.Point{p.Lon, p.Lat}) {
		e, isEntry := s.(*entry[N])
		if !isEntry || e == nil {
			continue
		}
		d := DistanceMeters(p, e.pos)
		if best < 0 || d < best || (d == best && e.key < bestKey) {
			best, bestKey, node, ok = d, e.key, e.node, true
		}
	}

	return node, ok
}
