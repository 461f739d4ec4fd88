// Package generator provides element generators over in-memory pools.
//
// Two generators are provided:
//
//   - Combinations yields every way to choose k elements from a pool, in a
//     fixed lexicographic order.
//   - Sampler draws pool keys uniformly at random without replacement.
//
// Both follow the same pull model: call Next until it fails with
// errs.ErrExhausted, or range over All for iterator-style consumption.
//
// # Combinations
//
// A Combinations generator enumerates the C(n, k) subsets of an n-element
// pool. The pool is snapshotted on the first draw, so changes to the
// caller's slice after enumeration begins do not affect it:
//
//	gen := generator.NewCombinations([]int{1, 2, 3, 4}, 2)
//	for gen.HasNext() {
//	    combo, _ := gen.Next()
//	    fmt.Println(combo) // [3 4], [2 4], [2 3], [1 4], [1 3], [1 2]
//	}
//
// # Random Sampling
//
// A Sampler draws each key of a map exactly once per pass, in uniformly
// random order. After a full pass Next fails with errs.ErrExhausted until
// Reset starts a new pass over the pool's current keys:
//
//	sampler, _ := generator.NewSampler(connsByID)
//	for id := range sampler.All() {
//	    probe(connsByID[id])
//	}
//	sampler.Reset() // next pass resamples everything
//
// Pass WithSource to supply a seeded random source when reproducible draw
// order is needed, for instance in tests:
//
//	src := rand.New(rand.NewPCG(1, 2))
//	sampler, _ := generator.NewSampler(pool, generator.WithSource(src))
//
// # Thread Safety
//
// Generators are not safe for concurrent use. Use one generator per
// goroutine, or serialize access externally.
package generator
