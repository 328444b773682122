package block

import "slices"

// Merge reduces blocks to the minimal start-sorted, pairwise-disjoint set
// covering the same points: the input is sorted by (start, end) and folded
// left, collapsing each block into the previous one whenever they overlap.
// Merge is idempotent and does not modify the input slice.
func Merge[T Unit](blocks []Block[T]) []Block[T] {
	if len(blocks) == 0 {
		return nil
	}
	sorted := slices.Clone(blocks)
	slices.SortFunc(sorted, Compare[T])

	merged := sorted[:1]
	for _, b := range sorted[1:] {
		last := merged[len(merged)-1]
		if last.Overlaps(b) {
			merged[len(merged)-1] = last.Union(b)
		} else {
			merged = append(merged, b)
		}
	}
	return merged
}

// MergeNeighbors folds others by comparing each element against its
// immediate predecessor, with b standing in for the predecessor of the
// first element: overlapping neighbors emit their union, and a run of two
// consecutive non-overlapping comparisons emits the predecessor on its
// own. The output therefore depends on the order and count of others, not
// only on the points they cover.
//
// Deprecated: the neighbor-at-a-time fold is not a general merge and
// produces overlapping output for many inputs. Use Merge over
// append([]Block[T]{b}, others...) instead.
func (b Block[T]) MergeNeighbors(others []Block[T]) []Block[T] {
	merged := make([]Block[T], 0, len(others))
	isolated := 0
	for i, other := range others {
		prev := b
		if i > 0 {
			prev = others[i-1]
		}
		if prev.Overlaps(other) {
			merged = append(merged, prev.Union(other))
			isolated = 0
			continue
		}
		isolated++
		if isolated == 2 {
			merged = append(merged, prev)
			isolated = 0
		}
	}
	return merged
}
