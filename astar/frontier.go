// SPDX-License-Identifier: MIT
//
// File: frontier.go
// Role: open-set min-heap with the (f, g, seq) total order.
// Determinism: seq is assigned on every push, so equal (f, g) pairs pop FIFO.

package astar

import (
	"container/heap"

	"github.com/katalvlaran/pathfind/core"
)

// frontierItem is one entry of the open set.
//
// An entry is current while its version equals the node's state version and
// the node is Open; otherwise it is stale and dropped when popped
// (lazy decrease-key).
type frontierItem[N comparable, C core.Cost] struct {
	node    N
	f, g    C
	seq     uint64 // insertion order, strictly increasing per search
	version uint32
}

// less is the total frontier order: f asc, then g asc, then seq asc.
func (a frontierItem[N, C]) less(b frontierItem[N, C]) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}

	return a.seq < b.seq
}

// frontierHeap implements heap.Interface over frontierItem values.
type frontierHeap[N comparable, C core.Cost] []frontierItem[N, C]

func (h frontierHeap[N, C]) Len() int           { return len(h) }
func (h frontierHeap[N, C]) Less(i, j int) bool { return h[i].less(h[j]) }
func (h frontierHeap[N, C]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap[N, C]) Push(x any) { *h = append(*h, x.(frontierItem[N, C])) }

func (h *frontierHeap[N, C]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// frontier wraps the heap and hands out insertion sequence numbers.
type frontier[N comparable, C core.Cost] struct {
	items   frontierHeap[N, C]
	nextSeq uint64
}

func (q *frontier[N, C]) push(node N, f, g C, version uint32) {
	heap.Push(&q.items, frontierItem[N, C]{node: node, f: f, g: g, seq: q.nextSeq, version: version})
	q.nextSeq++
}

func (q *frontier[N, C]) pop() frontierItem[N, C] {
	return heap.Pop(&q.items).(frontierItem[N, C])
}

func (q *frontier[N, C]) len() int { return q.items.Len() }
