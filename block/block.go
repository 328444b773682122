// Package block implements a closed numeric interval and the algebra used
// to compute free/busy coverage: relational predicates, derivations such as
// trimming and padding, interval subtraction, and merging of many blocks
// into a minimal disjoint covering set.
//
// Blocks carry no calendar or timezone semantics; callers map their domain
// values (e.g. timestamps) onto a linear numeric scale and interpret the
// results.
package block

import (
	"cmp"
	"fmt"
)

// Unit is the set of numeric scales a Block can be measured in.
type Unit interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Block is a closed interval [start, end] with start <= end. The zero value
// is the degenerate point interval [0, 0]. Blocks are comparable: two
// blocks are equal iff both endpoints are equal. A Block is never mutated
// after construction; every operation returns new values.
type Block[T Unit] struct {
	start T
	end   T
}

// New returns the block spanning from and to, swapping the endpoints if
// they are given in descending order. It fails with ErrInvalidInterval if
// either endpoint is not an ordered value (NaN).
func New[T Unit](from, to T) (Block[T], error) {
	if from != from || to != to {
		return Block[T]{}, ErrInvalidInterval
	}
	return ordered(from, to), nil
}

// MustNew is New, panicking on error.
func MustNew[T Unit](from, to T) Block[T] {
	b, err := New(from, to)
	if err != nil {
		panic(err)
	}
	return b
}

// ordered builds a block directly, normalizing endpoint order.
func ordered[T Unit](from, to T) Block[T] {
	if to < from {
		from, to = to, from
	}
	return Block[T]{start: from, end: to}
}

// Start returns the lower endpoint (inclusive).
func (b Block[T]) Start() T { return b.start }

// End returns the upper endpoint (inclusive).
func (b Block[T]) End() T { return b.end }

// Top is an alias for Start; scheduling callers tend to picture the scale
// as a vertical timeline with earlier values on top.
func (b Block[T]) Top() T { return b.start }

// Bottom is an alias for End.
func (b Block[T]) Bottom() T { return b.end }

// Length returns end - start. Never negative.
func (b Block[T]) Length() T { return b.end - b.start }

func (b Block[T]) String() string {
	return fmt.Sprintf("[%v, %v]", b.start, b.end)
}

// Compare orders blocks lexicographically by (start, end).
func Compare[T Unit](a, b Block[T]) int {
	if c := cmp.Compare(a.start, b.start); c != 0 {
		return c
	}
	return cmp.Compare(a.end, b.end)
}

func (b Block[T]) Less(other Block[T]) bool {
	return Compare(b, other) < 0
}

// Contains reports whether v lies within the closed interval.
func (b Block[T]) Contains(v T) bool {
	return b.start <= v && b.end >= v
}

// Surrounds reports strict containment: other lies inside b without
// sharing either boundary.
func (b Block[T]) Surrounds(other Block[T]) bool {
	return other.start > b.start && other.end < b.end
}

// Covers reports containment; boundaries may coincide.
func (b Block[T]) Covers(other Block[T]) bool {
	return other.start >= b.start && other.end <= b.end
}

// IntersectsTop reports whether b overlaps the start side of other: b
// begins at or before other's start and ends inside other.
func (b Block[T]) IntersectsTop(other Block[T]) bool {
	return b.start <= other.start && other.Contains(b.end)
}

// IntersectsBottom reports whether b overlaps the end side of other: b
// ends at or after other's end and begins inside other.
func (b Block[T]) IntersectsBottom(other Block[T]) bool {
	return b.end >= other.end && other.Contains(b.start)
}

// Overlaps reports whether the blocks share at least one point. Touching
// at a single boundary point counts; intervals are closed on both ends.
func (b Block[T]) Overlaps(other Block[T]) bool {
	return b.Contains(other.start) || other.Contains(b.start)
}
