package generator

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliangidoni/wirecc/errs"
)

func seededSampler(t *testing.T, pool map[int]string) *Sampler[int, string] {
	t.Helper()
	s, err := NewSampler(pool, WithSource(rand.New(rand.NewPCG(7, 11))))
	require.NoError(t, err)

	return s
}

func TestNewSampler(t *testing.T) {
	pool := map[int]string{1: "a", 2: "b", 3: "c"}

	s, err := NewSampler(pool)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Remaining())
}

func TestNewSampler_NilSource(t *testing.T) {
	s, err := NewSampler(map[int]string{1: "a"}, WithSource(nil))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNilSource)
	assert.Nil(t, s)
}

func TestSampler_EmptyPool(t *testing.T) {
	s, err := NewSampler(map[string]int{})
	require.NoError(t, err)

	_, err = s.Next()
	assert.ErrorIs(t, err, errs.ErrEmptyPool)

	_, err = s.Next()
	assert.ErrorIs(t, err, errs.ErrEmptyPool, "an empty pool should never become exhausted")
}

// TestSampler_FullPass verifies one pass draws every key exactly once and
// then reports exhaustion until Reset.
func TestSampler_FullPass(t *testing.T) {
	pool := map[int]string{1: "a", 2: "b", 3: "c"}
	s := seededSampler(t, pool)

	var drawn []int
	for range len(pool) {
		key, err := s.Next()
		require.NoError(t, err)
		drawn = append(drawn, key)
	}

	assert.ElementsMatch(t, []int{1, 2, 3}, drawn)
	assert.Equal(t, 0, s.Remaining())

	_, err := s.Next()
	assert.ErrorIs(t, err, errs.ErrExhausted)

	_, err = s.Next()
	assert.ErrorIs(t, err, errs.ErrExhausted, "exhaustion should persist until Reset")
}

func TestSampler_Reset(t *testing.T) {
	pool := map[int]string{1: "a", 2: "b"}
	s := seededSampler(t, pool)

	for range len(pool) {
		_, err := s.Next()
		require.NoError(t, err)
	}
	_, err := s.Next()
	require.ErrorIs(t, err, errs.ErrExhausted)

	s.Reset()
	assert.Equal(t, 2, s.Remaining())

	var drawn []int
	for range len(pool) {
		key, err := s.Next()
		require.NoError(t, err)
		drawn = append(drawn, key)
	}
	assert.ElementsMatch(t, []int{1, 2}, drawn, "a new pass should draw every key again")
}

// TestSampler_SameSeedSameOrder verifies draw order is a pure function of
// the seed and the pool contents.
func TestSampler_SameSeedSameOrder(t *testing.T) {
	pool := make(map[int]string, 10)
	for i := range 10 {
		pool[i] = "v"
	}

	a, err := NewSampler(pool, WithSource(rand.New(rand.NewPCG(42, 1))))
	require.NoError(t, err)
	b, err := NewSampler(pool, WithSource(rand.New(rand.NewPCG(42, 1))))
	require.NoError(t, err)

	for range len(pool) {
		ka, errA := a.Next()
		kb, errB := b.Next()
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, ka, kb)
	}
}

func TestSampler_Remaining(t *testing.T) {
	pool := map[int]string{1: "a", 2: "b", 3: "c"}
	s := seededSampler(t, pool)

	assert.Equal(t, 3, s.Remaining())

	for want := 2; want >= 0; want-- {
		_, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, want, s.Remaining())
	}
}

// TestSampler_PoolChanges verifies pool mutations take effect at the next
// pass, not during the current one.
func TestSampler_PoolChanges(t *testing.T) {
	pool := map[int]string{1: "a", 2: "b"}
	s := seededSampler(t, pool)

	for range 2 {
		_, err := s.Next()
		require.NoError(t, err)
	}

	pool[3] = "c"

	_, err := s.Next()
	assert.ErrorIs(t, err, errs.ErrExhausted, "a finished pass should stay finished")

	s.Reset()

	var drawn []int
	for range 3 {
		key, err := s.Next()
		require.NoError(t, err)
		drawn = append(drawn, key)
	}
	assert.ElementsMatch(t, []int{1, 2, 3}, drawn, "the new pass should include the added key")
}

func TestSampler_SingleKey(t *testing.T) {
	s, err := NewSampler(map[string]int{"only": 1})
	require.NoError(t, err)

	key, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "only", key)

	_, err = s.Next()
	assert.ErrorIs(t, err, errs.ErrExhausted)
}

// TestSampler_DefaultSource verifies sampling works without an explicit
// source.
func TestSampler_DefaultSource(t *testing.T) {
	pool := map[int]string{1: "a", 2: "b", 3: "c"}
	s, err := NewSampler(pool)
	require.NoError(t, err)

	var drawn []int
	for range len(pool) {
		key, err := s.Next()
		require.NoError(t, err)
		drawn = append(drawn, key)
	}

	assert.ElementsMatch(t, []int{1, 2, 3}, drawn)
}

func TestSampler_All(t *testing.T) {
	pool := map[int]string{1: "a", 2: "b", 3: "c", 4: "d"}
	s := seededSampler(t, pool)

	var drawn []int
	for key := range s.All() {
		drawn = append(drawn, key)
	}

	assert.ElementsMatch(t, []int{1, 2, 3, 4}, drawn)
	assert.Equal(t, 0, s.Remaining())
}

func TestSampler_All_EarlyBreak(t *testing.T) {
	pool := map[int]string{1: "a", 2: "b", 3: "c", 4: "d"}
	s := seededSampler(t, pool)

	count := 0
	for range s.All() {
		count++
		if count == 1 {
			break
		}
	}

	assert.Equal(t, 3, s.Remaining(), "breaking out should leave the pass resumable")
}

func BenchmarkSampler_FullPass(b *testing.B) {
	pool := make(map[int]string, 100)
	for i := range 100 {
		pool[i] = "v"
	}

	b.ResetTimer()
	for b.Loop() {
		s, err := NewSampler(pool, WithSource(rand.New(rand.NewPCG(1, 2))))
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, err := s.Next(); err != nil {
				break
			}
		}
	}
}
