package block

// SubtractMode selects how Subtract handles operands that fall outside the
// simple containment cases.
type SubtractMode int

const (
	// SubtractKeepDisjoint computes the closed-interval difference:
	// subtracting a block that shares no points leaves the receiver
	// unchanged, partial overlaps trim the receiver to its non-overlapped
	// side, and a subtrahend covering the receiver removes it entirely.
	SubtractKeepDisjoint SubtractMode = iota

	// SubtractDropDisjoint reproduces the earlier behavior of this
	// algebra: operands outside the containment cases yield no result at
	// all, with one exception: a subtrahend ending exactly at the
	// receiver's start leaves the receiver unchanged. Retained for
	// callers that depend on those results; new code should use
	// SubtractKeepDisjoint.
	SubtractDropDisjoint
)

// Add is interval union restricted to the overlapping case: overlapping
// blocks collapse to the single element b.Union(other). Disjoint blocks
// pass through as [other, b], argument first and not sorted; callers must
// not read an ordering invariant out of this branch.
func (b Block[T]) Add(other Block[T]) []Block[T] {
	if b.Overlaps(other) {
		return []Block[T]{b.Union(other)}
	}
	return []Block[T]{other, b}
}

// Subtract removes other's span from b under SubtractKeepDisjoint,
// returning zero, one, or two remainder blocks. Remainders share their
// trimmed boundary point with other; a single closed point cannot be
// removed from a closed interval.
func (b Block[T]) Subtract(other Block[T]) []Block[T] {
	return b.SubtractWith(other, SubtractKeepDisjoint)
}

// SubtractWith is Subtract under an explicit mode.
func (b Block[T]) SubtractWith(other Block[T], mode SubtractMode) []Block[T] {
	switch {
	case b == other:
		return nil
	case b.Surrounds(other):
		above, below := b.Split(other)
		return []Block[T]{above, below}
	case b.Covers(other) && b.IntersectsTop(other):
		// other is flush with b's end; keep the top remainder.
		return []Block[T]{b.TrimTo(other.start)}
	case b.Covers(other) && b.IntersectsBottom(other):
		// other is flush with b's start; keep the bottom remainder.
		return []Block[T]{b.TrimFrom(other.end)}
	}

	if mode == SubtractDropDisjoint {
		if b.Overlaps(other) && other.end == b.start {
			return []Block[T]{b}
		}
		return nil
	}

	if !b.Overlaps(other) {
		return []Block[T]{b}
	}
	if other.Covers(b) {
		return nil
	}
	if other.start <= b.start {
		return []Block[T]{b.TrimFrom(other.end)}
	}
	return []Block[T]{b.TrimTo(other.start)}
}

// SubtractBlocks removes a sequence of blocks from b by boundary points:
// every endpoint of others that falls inside b is collected in input
// order, and the four collected points are paired into two blocks. It
// fails with ErrInsufficientBoundaryPoints unless exactly four points
// qualify, since any other count leaves the pairing undefined.
//
// The result is positional, not a set difference; for that, apply
// Subtract successively or use a blockset.Set.
func (b Block[T]) SubtractBlocks(others []Block[T]) ([]Block[T], error) {
	points := make([]T, 0, 4)
	for _, other := range others {
		if b.Contains(other.start) {
			points = append(points, other.start)
		}
		if b.Contains(other.end) {
			points = append(points, other.end)
		}
	}
	if len(points) != 4 {
		return nil, ErrInsufficientBoundaryPoints
	}
	return []Block[T]{
		ordered(points[0], points[1]),
		ordered(points[2], points[3]),
	}, nil
}
