// Package blockset maintains merged coverage over blocks: a Set holds the
// minimal disjoint representation of everything inserted and answers for
// the uncovered gaps inside a window, which is the free/busy computation
// the block algebra exists to serve.
package blockset

import (
	"iter"

	"github.com/google/btree"

	"github.com/garethgeorge/freebusy/block"
)

const btreeDegree = 32

// Set accumulates blocks and keeps them merged: members are pairwise
// disjoint under closed-interval semantics (blocks that touch at a
// boundary point collapse into one) and ordered by start.
// It is not thread-safe.
type Set[T block.Unit] struct {
	members *btree.BTreeG[block.Block[T]]
}

func New[T block.Unit]() *Set[T] {
	return &Set[T]{
		members: btree.NewG(btreeDegree, func(a, b block.Block[T]) bool {
			return block.Compare(a, b) < 0
		}),
	}
}

// Insert adds b to the set, absorbing every member it overlaps or touches
// into a single merged member.
func (s *Set[T]) Insert(b block.Block[T]) {
	merged := b
	var absorb []block.Block[T]

	// Members at or after b's position, walked while they still overlap
	// the growing span. Members are disjoint, so the first miss ends it.
	s.members.AscendGreaterOrEqual(b, func(item block.Block[T]) bool {
		if !merged.Overlaps(item) {
			return false
		}
		absorb = append(absorb, item)
		merged = merged.Union(item)
		return true
	})
	// At most the nearest predecessor can reach b from before. A member
	// equal to b was already absorbed by the ascending walk.
	s.members.DescendLessOrEqual(b, func(item block.Block[T]) bool {
		if item == b {
			return true
		}
		if !merged.Overlaps(item) {
			return false
		}
		absorb = append(absorb, item)
		merged = merged.Union(item)
		return true
	})

	for _, item := range absorb {
		s.members.Delete(item)
	}
	s.members.ReplaceOrInsert(merged)
}

// Remove subtracts b from every member it overlaps, splitting members that
// surround b. Boundary points shared with b remain covered; a closed
// interval cannot give up a single point.
func (s *Set[T]) Remove(b block.Block[T]) {
	var hit []block.Block[T]
	s.members.AscendGreaterOrEqual(b, func(item block.Block[T]) bool {
		if !b.Overlaps(item) {
			return false
		}
		hit = append(hit, item)
		return true
	})
	s.members.DescendLessOrEqual(b, func(item block.Block[T]) bool {
		if item == b {
			return true
		}
		if !b.Overlaps(item) {
			return false
		}
		hit = append(hit, item)
		return true
	})

	for _, item := range hit {
		s.members.Delete(item)
		for _, rest := range item.Subtract(b) {
			s.members.ReplaceOrInsert(rest)
		}
	}
}

// Covered reports whether a single member covers all of b.
func (s *Set[T]) Covered(b block.Block[T]) bool {
	covered := false
	s.members.AscendGreaterOrEqual(b, func(item block.Block[T]) bool {
		covered = item.Covers(b)
		return false
	})
	if covered {
		return true
	}
	s.members.DescendLessOrEqual(b, func(item block.Block[T]) bool {
		covered = item.Covers(b)
		return false
	})
	return covered
}

// Gaps returns the maximal sub-blocks of window not covered by any member,
// in ascending order: the free time within window. Gap endpoints coincide
// with member boundaries, matching the closed-interval trimming done by
// Subtract.
func (s *Set[T]) Gaps(window block.Block[T]) []block.Block[T] {
	var gaps []block.Block[T]
	cursor := window.Start()
	s.members.Ascend(func(item block.Block[T]) bool {
		if item.Start() > window.End() {
			return false
		}
		if item.End() < cursor {
			return true
		}
		if item.Start() > cursor {
			gaps = append(gaps, block.MustNew(cursor, item.Start()))
		}
		if item.End() > cursor {
			cursor = item.End()
		}
		return true
	})
	if cursor < window.End() {
		gaps = append(gaps, block.MustNew(cursor, window.End()))
	}
	return gaps
}

// All iterates the members in ascending start order.
func (s *Set[T]) All() iter.Seq[block.Block[T]] {
	return func(yield func(block.Block[T]) bool) {
		s.members.Ascend(func(item block.Block[T]) bool {
			return yield(item)
		})
	}
}

// Blocks returns the members in ascending start order.
func (s *Set[T]) Blocks() []block.Block[T] {
	out := make([]block.Block[T], 0, s.members.Len())
	s.members.Ascend(func(item block.Block[T]) bool {
		out = append(out, item)
		return true
	})
	return out
}

// Len returns the number of disjoint members.
func (s *Set[T]) Len() int {
	return s.members.Len()
}

// Total returns the summed length of all members.
func (s *Set[T]) Total() T {
	var total T
	s.members.Ascend(func(item block.Block[T]) bool {
		total += item.Length()
		return true
	})
	return total
}
