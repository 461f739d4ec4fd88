// Package resource defines resource identifiers and identifier sets.
//
// Identifiers are signed 32-bit values so they can travel on the wire as
// fixed-width integers. A Set holds unique identifiers and yields them in
// ascending order, which keeps serialized output deterministic.
package resource

import (
	"iter"
	"maps"
	"slices"
)

// ID identifies a resource. Identifiers are encoded on the wire as signed
// 32-bit big-endian integers.
type ID int32

// Invalid is the reserved identifier meaning "no resource".
const Invalid ID = -1

// IsValid reports whether the identifier refers to an actual resource.
func (id ID) IsValid() bool {
	return id != Invalid
}

// Set is a collection of unique resource identifiers.
//
// The zero value is an empty set ready for use. Read operations such as Len,
// Has and Values are safe on a nil *Set and treat it as empty.
type Set struct {
	ids map[ID]struct{}
}

// NewSet returns a set seeded with the given identifiers.
// Duplicate identifiers collapse to a single entry.
func NewSet(ids ...ID) *Set {
	s := &Set{}
	for _, id := range ids {
		s.Add(id)
	}

	return s
}

// Add inserts id into the set. Adding an identifier that is already present
// is a no-op.
func (s *Set) Add(id ID) {
	if s.ids == nil {
		s.ids = make(map[ID]struct{})
	}
	s.ids[id] = struct{}{}
}

// Remove deletes id from the set if present.
func (s *Set) Remove(id ID) {
	delete(s.ids, id)
}

// Has reports whether id is in the set.
func (s *Set) Has(id ID) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id]

	return ok
}

// Len returns the number of identifiers in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.ids)
}

// Values returns the identifiers in ascending order.
// It returns nil for an empty set.
func (s *Set) Values() []ID {
	if s == nil || len(s.ids) == 0 {
		return nil
	}

	out := make([]ID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// All returns an iterator over the identifiers in ascending order.
//
// Example:
//
//	for id := range set.All() {
//	    process(id)
//	}
func (s *Set) All() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for _, id := range s.Values() {
			if !yield(id) {
				return
			}
		}
	}
}

// Equal reports whether both sets contain exactly the same identifiers.
// A nil set compares equal to an empty set.
func (s *Set) Equal(other *Set) bool {
	var a, b map[ID]struct{}
	if s != nil {
		a = s.ids
	}
	if other != nil {
		b = other.ids
	}

	return maps.Equal(a, b)
}

// Clone returns a copy of the set that shares no storage with s.
func (s *Set) Clone() *Set {
	if s == nil || len(s.ids) == 0 {
		return &Set{}
	}

	return &Set{ids: maps.Clone(s.ids)}
}

// Clear removes all identifiers from the set.
func (s *Set) Clear() {
	clear(s.ids)
}
