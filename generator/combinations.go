package generator

import (
	"fmt"
	"iter"
	"slices"

	"github.com/eliangidoni/wirecc/errs"
	"github.com/eliangidoni/wirecc/internal/debug"
)

// Combinations enumerates every way to choose k elements from a pool, in a
// fixed lexicographic order. Selection moves from the tail of the pool
// toward the head, so the first combination is the last k elements and the
// final combination is the first k.
//
// Enumerating n choose k subsets takes O(n) time and memory per combination;
// the full pool is never duplicated beyond one internal snapshot.
type Combinations[T any] struct {
	pool  []T
	elems []T
	mask  []bool
	k     int
	more  bool
	begun bool
}

// NewCombinations creates a generator over the k-element combinations of
// pool.
//
// Parameters:
//   - pool: the elements to choose from; captured by reference, snapshotted
//     on the first Next call
//   - k: the combination size; k == 0 yields exactly one empty combination,
//     k > len(pool) yields none
//
// Returns:
//   - *Combinations[T]: the generator, positioned before the first
//     combination
//
// A negative k yields no combinations; with debug assertions enabled it
// panics instead.
func NewCombinations[T any](pool []T, k int) *Combinations[T] {
	debug.Assertf(k >= 0, "combinations: negative size %d", k)

	return &Combinations[T]{pool: pool, k: k}
}

// HasNext reports whether another combination remains.
func (c *Combinations[T]) HasNext() bool {
	if !c.begun {
		return c.k >= 0 && len(c.pool) >= c.k
	}

	return c.more
}

// Next returns the next combination in lexicographic order. The returned
// slice is freshly allocated and safe to retain.
//
// Returns errs.ErrExhausted once every combination has been drawn.
func (c *Combinations[T]) Next() ([]T, error) {
	if !c.HasNext() {
		return nil, fmt.Errorf("%w: all combinations drawn", errs.ErrExhausted)
	}
	if !c.begun {
		c.begin()
	}

	out := make([]T, 0, c.k)
	for i, selected := range c.mask {
		if selected {
			out = append(out, c.elems[i])
		}
	}
	c.more = nextPermutation(c.mask)

	return out, nil
}

// All returns an iterator over the remaining combinations.
//
// Example:
//
//	for combo := range gen.All() {
//	    process(combo)
//	}
func (c *Combinations[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for c.HasNext() {
			combo, err := c.Next()
			if err != nil {
				return
			}
			if !yield(combo) {
				return
			}
		}
	}
}

// begin snapshots the pool and arms the selection mask with the
// lexicographically first arrangement, which selects the last k elements.
func (c *Combinations[T]) begin() {
	c.elems = slices.Clone(c.pool)
	c.mask = make([]bool, len(c.elems))
	for i := len(c.elems) - c.k; i < len(c.elems); i++ {
		c.mask[i] = true
	}
	c.begun = true
}

// nextPermutation rearranges mask into the lexicographically next
// permutation, treating false < true. It returns false when mask was
// already the last permutation, leaving it rearranged back to the first.
func nextPermutation(mask []bool) bool {
	i := len(mask) - 2
	for i >= 0 && !(!mask[i] && mask[i+1]) {
		i--
	}
	if i < 0 {
		slices.Reverse(mask)

		return false
	}

	j := len(mask) - 1
	for !mask[j] {
		j--
	}
	mask[i], mask[j] = mask[j], mask[i]
	slices.Reverse(mask[i+1:])

	return true
}
