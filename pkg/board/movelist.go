package board

import (
	"container/heap"
	"fmt"
	"math"
	"sort"
)

// MaxMoves bounds the number of pseudo-legal moves in any reachable chess position
// (the true theoretical maximum is 218); this gives headroom while staying array-sized
// so move generation never allocates on the heap.
const MaxMoves = 256

// MoveBuffer is a fixed-capacity, stack-resident move buffer used by the move
// generator. Passing one in lets callers reuse the backing array across plies
// instead of allocating a fresh slice per node.
type MoveBuffer struct {
	moves [MaxMoves]Move
	n     int
}

// Reset empties the buffer for reuse.
func (b *MoveBuffer) Reset() {
	b.n = 0
}

// Add appends a move to the buffer. Panics if the buffer is full, which would
// indicate a move generation bug rather than a legitimate chess position.
func (b *MoveBuffer) Add(m Move) {
	if b.n >= MaxMoves {
		panic("move buffer overflow")
	}
	b.moves[b.n] = m
	b.n++
}

// Len returns the number of moves currently in the buffer.
func (b *MoveBuffer) Len() int {
	return b.n
}

// Slice returns the buffer's contents as a slice backed by the buffer's own array.
// The slice is invalidated by the next Reset.
func (b *MoveBuffer) Slice() []Move {
	return b.moves[:b.n]
}

// MovePriority represents the move order priority.
type MovePriority int16

// MovePriorityFn assigns a priority to moves
type MovePriorityFn func(move Move) MovePriority

// First puts the given move first. Otherwise uses the given function.
func First(first Move, fn MovePriorityFn) MovePriorityFn {
	return func(m Move) MovePriority {
		if first.Equals(m) {
			return math.MaxInt16
		}
		return fn(m)
	}
}

// SortByPriority sorts the moves by priority, preserving order for same priority.
func SortByPriority(moves []Move, fn MovePriorityFn) {
	sort.SliceStable(moves, func(i, j int) bool {
		return fn(moves[i]) > fn(moves[j])
	})
}

// MoveList is move priority queue for move ordering.
type MoveList struct {
	h moveHeap
}

// NewMoveList returns a new move list with the given priorities.
func NewMoveList(moves []Move, fn MovePriorityFn) *MoveList {
	h := moveHeap(make([]elm, len(moves)))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next returns the next move. It is the highest priority move in the list.
func (ml *MoveList) Next() (Move, bool) {
	if ml.Size() == 0 {
		return Move{}, false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

type elm struct {
	m   Move
	val MovePriority
}

type moveHeap []elm

func (h moveHeap) Len() int {
	return len(h)
}

func (h moveHeap) Less(i, j int) bool {
	return h[i].val > h[j].val
}

func (h moveHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *moveHeap) Push(x interface{}) {
	panic("fixed size heap")
}

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[0 : n-1]
	return ret
}
