package generator

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/eliangidoni/wirecc/errs"
	"github.com/eliangidoni/wirecc/internal/options"
)

// Sampler draws the keys of a pool map uniformly at random without
// replacement. Each pass visits every key exactly once; after a full pass
// Next fails with errs.ErrExhausted until Reset begins a new pass.
//
// The pool map is held by reference: keys added or removed by the caller
// become visible when the next pass starts, not during an ongoing one.
type Sampler[K cmp.Ordered, V any] struct {
	pool  map[K]V
	keys  []K
	src   *rand.Rand
	begun bool
}

type samplerConfig struct {
	src *rand.Rand
}

// SamplerOption configures a Sampler created by NewSampler.
type SamplerOption = options.Option[*samplerConfig]

// WithSource sets the random source used to pick keys. Supply a seeded
// source for reproducible draw order.
//
// The option fails with errs.ErrNilSource if src is nil.
func WithSource(src *rand.Rand) SamplerOption {
	return options.New(func(cfg *samplerConfig) error {
		if src == nil {
			return errs.ErrNilSource
		}
		cfg.src = src

		return nil
	})
}

// NewSampler creates a sampler over the keys of pool.
//
// Parameters:
//   - pool: the map whose keys are sampled; held by reference
//   - opts: optional configuration (e.g. WithSource)
//
// Returns:
//   - *Sampler[K, V]: the sampler, positioned before the first draw
//   - error: nil on success, or the first option error
//
// Without WithSource the sampler uses the shared top-level random source,
// so draw order differs between runs.
func NewSampler[K cmp.Ordered, V any](pool map[K]V, opts ...SamplerOption) (*Sampler[K, V], error) {
	cfg := &samplerConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Sampler[K, V]{pool: pool, src: cfg.src}, nil
}

// Next draws one key at random from those not yet drawn this pass.
//
// Returns errs.ErrEmptyPool if the pool has no keys at the start of a pass,
// and errs.ErrExhausted once every key has been drawn. Call Reset to start
// the next pass.
func (s *Sampler[K, V]) Next() (K, error) {
	var zero K
	if !s.begun {
		if len(s.pool) == 0 {
			return zero, fmt.Errorf("%w: no keys to sample", errs.ErrEmptyPool)
		}
		// Sorted materialization keeps draw order reproducible for a
		// given seed regardless of map iteration order.
		s.keys = slices.Sorted(maps.Keys(s.pool))
		s.begun = true
	}
	if len(s.keys) == 0 {
		return zero, fmt.Errorf("%w: pass complete, call Reset to sample again", errs.ErrExhausted)
	}

	var idx int
	if s.src != nil {
		idx = s.src.IntN(len(s.keys))
	} else {
		idx = rand.IntN(len(s.keys))
	}

	key := s.keys[idx]
	last := len(s.keys) - 1
	s.keys[idx] = s.keys[last]
	s.keys = s.keys[:last]

	return key, nil
}

// Reset ends the current pass. The next Next call starts a fresh pass over
// the pool's current keys.
func (s *Sampler[K, V]) Reset() {
	s.keys = nil
	s.begun = false
}

// Remaining returns how many keys are still undrawn in the current pass, or
// the pool size if no pass has started.
func (s *Sampler[K, V]) Remaining() int {
	if !s.begun {
		return len(s.pool)
	}

	return len(s.keys)
}

// All returns an iterator over the rest of the current pass.
//
// Example:
//
//	for key := range sampler.All() {
//	    process(pool[key])
//	}
func (s *Sampler[K, V]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for {
			key, err := s.Next()
			if err != nil {
				return
			}
			if !yield(key) {
				return
			}
		}
	}
}
