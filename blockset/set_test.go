package blockset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/garethgeorge/freebusy/block"
)

func mk(from, to int64) block.Block[int64] {
	return block.MustNew(from, to)
}

func TestInsert(t *testing.T) {
	t.Run("disjoint members stay separate and sorted", func(t *testing.T) {
		s := New[int64]()
		s.Insert(mk(20, 25))
		s.Insert(mk(1, 5))
		assert.Equal(t, []block.Block[int64]{mk(1, 5), mk(20, 25)}, s.Blocks())
		assert.Equal(t, 2, s.Len())
	})

	t.Run("overlapping members merge", func(t *testing.T) {
		s := New[int64]()
		s.Insert(mk(1, 5))
		s.Insert(mk(4, 10))
		assert.Equal(t, []block.Block[int64]{mk(1, 10)}, s.Blocks())
	})

	t.Run("touching members merge", func(t *testing.T) {
		s := New[int64]()
		s.Insert(mk(1, 5))
		s.Insert(mk(5, 9))
		assert.Equal(t, []block.Block[int64]{mk(1, 9)}, s.Blocks())
	})

	t.Run("a bridge absorbs both sides", func(t *testing.T) {
		s := New[int64]()
		s.Insert(mk(1, 5))
		s.Insert(mk(10, 15))
		s.Insert(mk(4, 11))
		assert.Equal(t, []block.Block[int64]{mk(1, 15)}, s.Blocks())
	})

	t.Run("a spanning insert absorbs many members", func(t *testing.T) {
		s := New[int64]()
		s.Insert(mk(1, 2))
		s.Insert(mk(4, 5))
		s.Insert(mk(7, 8))
		s.Insert(mk(0, 10))
		assert.Equal(t, []block.Block[int64]{mk(0, 10)}, s.Blocks())
	})

	t.Run("reinserting a covered block changes nothing", func(t *testing.T) {
		s := New[int64]()
		s.Insert(mk(0, 10))
		s.Insert(mk(2, 8))
		assert.Equal(t, []block.Block[int64]{mk(0, 10)}, s.Blocks())
	})
}

func TestRemove(t *testing.T) {
	t.Run("splits a surrounding member", func(t *testing.T) {
		s := New[int64]()
		s.Insert(mk(0, 100))
		s.Remove(mk(10, 20))
		assert.Equal(t, []block.Block[int64]{mk(0, 10), mk(20, 100)}, s.Blocks())
	})

	t.Run("removes an exact member", func(t *testing.T) {
		s := New[int64]()
		s.Insert(mk(10, 20))
		s.Remove(mk(10, 20))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("trims across several members", func(t *testing.T) {
		s := New[int64]()
		s.Insert(mk(0, 10))
		s.Insert(mk(20, 30))
		s.Insert(mk(40, 50))
		s.Remove(mk(5, 45))
		assert.Equal(t, []block.Block[int64]{mk(0, 5), mk(45, 50)}, s.Blocks())
	})

	t.Run("removing uncovered span changes nothing", func(t *testing.T) {
		s := New[int64]()
		s.Insert(mk(0, 10))
		s.Remove(mk(20, 30))
		assert.Equal(t, []block.Block[int64]{mk(0, 10)}, s.Blocks())
	})
}

func TestCovered(t *testing.T) {
	s := New[int64]()
	s.Insert(mk(10, 20))
	s.Insert(mk(30, 40))

	assert.True(t, s.Covered(mk(10, 20)))
	assert.True(t, s.Covered(mk(12, 18)))
	assert.True(t, s.Covered(mk(10, 15)))
	assert.False(t, s.Covered(mk(15, 35)))
	assert.False(t, s.Covered(mk(0, 5)))
	assert.False(t, New[int64]().Covered(mk(0, 5)))
}

func TestGaps(t *testing.T) {
	t.Run("free time between members", func(t *testing.T) {
		s := New[int64]()
		s.Insert(mk(10, 20))
		s.Insert(mk(30, 40))
		got := s.Gaps(mk(0, 50))
		assert.Equal(t, []block.Block[int64]{mk(0, 10), mk(20, 30), mk(40, 50)}, got)
	})

	t.Run("members straddling the window are clamped", func(t *testing.T) {
		s := New[int64]()
		s.Insert(mk(-10, 5))
		s.Insert(mk(45, 60))
		got := s.Gaps(mk(0, 50))
		assert.Equal(t, []block.Block[int64]{mk(5, 45)}, got)
	})

	t.Run("empty set frees the whole window", func(t *testing.T) {
		got := New[int64]().Gaps(mk(0, 50))
		assert.Equal(t, []block.Block[int64]{mk(0, 50)}, got)
	})

	t.Run("fully covered window has no gaps", func(t *testing.T) {
		s := New[int64]()
		s.Insert(mk(-10, 60))
		assert.Empty(t, s.Gaps(mk(0, 50)))
	})

	t.Run("members outside the window are ignored", func(t *testing.T) {
		s := New[int64]()
		s.Insert(mk(-20, -10))
		s.Insert(mk(60, 70))
		got := s.Gaps(mk(0, 50))
		assert.Equal(t, []block.Block[int64]{mk(0, 50)}, got)
	})
}

func TestTotalAndAll(t *testing.T) {
	s := New[int64]()
	s.Insert(mk(10, 20))
	s.Insert(mk(30, 40))

	assert.Equal(t, int64(20), s.Total())

	var collected []block.Block[int64]
	for b := range s.All() {
		collected = append(collected, b)
	}
	assert.Equal(t, s.Blocks(), collected)
}
