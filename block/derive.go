package block

// Union returns the minimal block enclosing both b and other, whether or
// not they overlap. Use Add when disjoint operands must stay disjoint
// rather than collapse into a bounding span.
func (b Block[T]) Union(other Block[T]) Block[T] {
	return Block[T]{start: min(b.start, other.start), end: max(b.end, other.end)}
}

// Split cuts other's span out of b by bounds alone, returning the fragment
// above ([b.start, other.start]) and the fragment below ([other.end, b.end]).
// It does not verify that b surrounds other; callers establish that first.
func (b Block[T]) Split(other Block[T]) (Block[T], Block[T]) {
	return ordered(b.start, other.start), ordered(other.end, b.end)
}

// TrimFrom moves the start of the block to newStart, keeping the end.
func (b Block[T]) TrimFrom(newStart T) Block[T] {
	return ordered(newStart, b.end)
}

// TrimTo moves the end of the block to newEnd, keeping the start.
func (b Block[T]) TrimTo(newEnd T) Block[T] {
	return ordered(b.start, newEnd)
}

// Limited intersects b with limiter. It fails with ErrEmptyIntersection
// when the two do not overlap, since the clamped bounds would cross.
func (b Block[T]) Limited(limiter Block[T]) (Block[T], error) {
	start := max(b.start, limiter.start)
	end := min(b.end, limiter.end)
	if end < start {
		return Block[T]{}, ErrEmptyIntersection
	}
	return Block[T]{start: start, end: end}, nil
}

// Padded expands the block outward by topPadding before the start and
// bottomPadding after the end. Negative padding is clamped to zero;
// padding never shrinks a block.
func (b Block[T]) Padded(topPadding, bottomPadding T) Block[T] {
	var zero T
	return Block[T]{
		start: b.start - max(topPadding, zero),
		end:   b.end + max(bottomPadding, zero),
	}
}
