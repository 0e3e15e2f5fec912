// Package sparseset provides a generic sparse set: a map from sparse unsigned
// integer identifiers to elements stored contiguously in memory.
//
// A sparse set supports O(1) insertion, removal, and lookup while keeping the
// element storage dense (no holes), so iterating the live elements is a linear
// scan over one contiguous slice. It is particularly useful as component
// storage in entity-component systems and anywhere else small integer handles
// index into bulk data.
//
// The structure owns three parallel sequences:
//   - a sparse table, indexed directly by identifier, holding either a dense
//     index or the absent sentinel (the maximum value of the ID type)
//   - a dense identifier sequence, giving the identifier owning each dense slot
//   - a dense element sequence, always compacted to [0, Len())
//
// Basic usage:
//
//	// Support identifiers 0..63.
//	s := sparseset.New[uint32, string](64)
//
//	s.Insert(7, "seven")
//	if elem, ok := s.Lookup(7); ok {
//	    fmt.Println(*elem) // "seven"
//	}
//	s.Remove(7)
//
// Removal relocates the last live element into the freed slot, so iteration
// order is not stable across removals. Identifier lifecycle is entirely the
// caller's responsibility: the set never recycles identifiers, and the sparse
// table only ever grows through an explicit Grow call.
//
// A Set is not safe for concurrent use. Readers may share a Set only while no
// mutation is in flight; concurrent mutators need external locking.
package sparseset

import (
	"golang.org/x/exp/constraints"

	"github.com/coregx/sparseset/internal/conv"
)

// sentinel returns the absent marker for the ID type: its maximum value.
// The marker is reserved and never a valid dense index, which keeps liveness
// checks to a single sparse-table read.
func sentinel[ID constraints.Unsigned]() ID {
	var zero ID
	return ^zero
}

// Set maps unsigned integer identifiers to elements stored in a dense slice.
//
// The zero value is an empty set with zero capacity: every insert fails until
// Grow extends the sparse table. Element types must be safe to relocate by
// plain assignment; Remove moves the last live element into the freed slot
// without any per-element hook.
type Set[ID constraints.Unsigned, E any] struct {
	sparse []ID // identifier -> dense index, or sentinel
	ids    []ID // dense index -> identifier
	elems  []E  // dense element storage
	n      ID   // count of live dense slots
}

// New creates a sparse set supporting identifiers in [0, capacity).
// Pass 0 for an empty set that must be grown before use.
func New[ID constraints.Unsigned, E any](capacity ID) *Set[ID, E] {
	s := &Set[ID, E]{}
	s.Grow(capacity)
	return s
}

// inRange reports whether id can index the sparse table.
func (s *Set[ID, E]) inRange(id ID) bool {
	return id < conv.Unsigned[ID](len(s.sparse))
}

// Insert adds elem under id.
//
// If id already has a live entry the call is a no-op and reports false with a
// nil error; the stored element is not overwritten. If id is at or beyond
// Capacity() the call fails with ErrOutOfRange — the sparse table is never
// grown implicitly, callers extend it with Grow. Otherwise the element is
// written into the next dense slot (reusing reserve capacity when available)
// and the call reports true.
//
// Insert may reallocate the dense storage, invalidating pointers previously
// returned by Get, Lookup, Data, or Values.
func (s *Set[ID, E]) Insert(id ID, elem E) (bool, error) {
	if !s.inRange(id) {
		return false, &IDError{ID: uint64(id), Err: ErrOutOfRange}
	}
	if s.sparse[id] != sentinel[ID]() {
		return false, nil
	}
	if conv.Index(s.n) < len(s.elems) {
		s.elems[s.n] = elem
		s.ids[s.n] = id
	} else {
		s.elems = append(s.elems, elem)
		s.ids = append(s.ids, id)
	}
	s.sparse[id] = s.n
	s.n++
	return true, nil
}

// Remove deletes the entry for id, reporting whether an entry was removed.
// Absent and out-of-range identifiers are a no-op.
//
// Removal is O(1): when the removed entry is not the last live slot, the last
// element is relocated into the freed slot and its sparse-table entry is
// repaired to point at the new position.
func (s *Set[ID, E]) Remove(id ID) bool {
	if !s.Exists(id) {
		return false
	}
	last := s.n - 1
	r := s.sparse[id]
	if r != last {
		s.elems[r] = s.elems[last]
		moved := s.ids[last]
		s.ids[r] = moved
		s.sparse[moved] = r
	}
	var zero E
	s.elems[last] = zero // release references held by the vacated slot
	s.sparse[id] = sentinel[ID]()
	s.n = last
	return true
}

// Get returns a pointer to the element stored under id.
// Absent and out-of-range identifiers fail with ErrNotFound.
//
// The returned pointer is valid only until the next call that inserts or
// removes: Insert may reallocate the dense storage and Remove may relocate
// the referenced slot.
func (s *Set[ID, E]) Get(id ID) (*E, error) {
	if !s.Exists(id) {
		return nil, &IDError{ID: uint64(id), Err: ErrNotFound}
	}
	return &s.elems[s.sparse[id]], nil
}

// Lookup returns a pointer to the element stored under id, or false if id has
// no live entry. It never fails. The pointer validity contract matches Get.
func (s *Set[ID, E]) Lookup(id ID) (*E, bool) {
	if !s.Exists(id) {
		return nil, false
	}
	return &s.elems[s.sparse[id]], true
}

// Exists reports whether id has a live entry.
// Out-of-range identifiers report false rather than failing.
func (s *Set[ID, E]) Exists(id ID) bool {
	return s.inRange(id) && s.sparse[id] != sentinel[ID]()
}

// Index returns the dense index of the entry for id.
// The index is stable only until the next Remove, which may relocate entries.
func (s *Set[ID, E]) Index(id ID) (ID, error) {
	if !s.Exists(id) {
		return 0, &IDError{ID: uint64(id), Err: ErrNotFound}
	}
	return s.sparse[id], nil
}

// Data returns the whole dense element storage, including any reserve slots
// past Len() left behind by Remove or Clear. Callers iterating the live
// elements should prefer Values, or bound their loop to [0, Len()).
func (s *Set[ID, E]) Data() []E {
	return s.elems
}

// Values returns the live elements as a prefix of the dense storage.
// The slice is valid until the next mutation; the order matches IDs.
func (s *Set[ID, E]) Values() []E {
	return s.elems[:s.n]
}

// IDs returns the identifiers owning each live dense slot, aligned with
// Values. The slice is valid until the next mutation.
func (s *Set[ID, E]) IDs() []ID {
	return s.ids[:s.n]
}

// Iter calls f for each live entry. Elements may be mutated through the
// pointer, but f must not insert into or remove from the set. The iteration
// order is unspecified.
func (s *Set[ID, E]) Iter(f func(id ID, elem *E)) {
	for i := ID(0); i < s.n; i++ {
		f(s.ids[i], &s.elems[i])
	}
}

// Len returns the number of live entries.
func (s *Set[ID, E]) Len() int {
	return conv.Index(s.n)
}

// IsEmpty reports whether the set contains no entries.
func (s *Set[ID, E]) IsEmpty() bool {
	return s.n == 0
}

// Capacity returns the number of identifiers the sparse table supports.
// Valid identifiers are [0, Capacity()).
func (s *Set[ID, E]) Capacity() ID {
	return conv.Unsigned[ID](len(s.sparse))
}

// DenseCapacity returns the number of elements the dense storage has
// allocated space for.
func (s *Set[ID, E]) DenseCapacity() int {
	return cap(s.elems)
}

// Grow extends the sparse table to support identifiers in [0, capacity).
// It is a no-op when capacity does not exceed the current Capacity().
// The sparse table never shrinks.
//
// Note that the maximum value of the ID type is the absent sentinel, so the
// largest identifier any set can support is that value minus one.
func (s *Set[ID, E]) Grow(capacity ID) {
	need := conv.Index(capacity)
	if need <= len(s.sparse) {
		return
	}
	grown := make([]ID, need)
	copy(grown, s.sparse)
	for i := len(s.sparse); i < need; i++ {
		grown[i] = sentinel[ID]()
	}
	s.sparse = grown
}

// ShrinkToFit reallocates the dense storage down to exactly Len() elements,
// releasing reserve capacity. The sparse table is not touched.
func (s *Set[ID, E]) ShrinkToFit() {
	n := conv.Index(s.n)
	elems := make([]E, n)
	copy(elems, s.elems[:n])
	s.elems = elems

	ids := make([]ID, n)
	copy(ids, s.ids[:n])
	s.ids = ids
}

// Clear removes every entry in O(Len()) time, keeping all allocations so the
// set can be refilled without growing.
func (s *Set[ID, E]) Clear() {
	for _, id := range s.ids[:s.n] {
		s.sparse[id] = sentinel[ID]()
	}
	clear(s.elems[:s.n]) // release references held by vacated slots
	s.n = 0
}

// Clone returns a deep copy of the set. Elements are copied by assignment.
func (s *Set[ID, E]) Clone() *Set[ID, E] {
	c := &Set[ID, E]{
		sparse: make([]ID, len(s.sparse)),
		ids:    make([]ID, len(s.ids)),
		elems:  make([]E, len(s.elems)),
		n:      s.n,
	}
	copy(c.sparse, s.sparse)
	copy(c.ids, s.ids)
	copy(c.elems, s.elems)
	return c
}
