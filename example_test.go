package sparseset_test

import (
	"errors"
	"fmt"

	"github.com/coregx/sparseset"
)

// ExampleNew demonstrates basic insertion and lookup.
func ExampleNew() {
	s := sparseset.New[uint32, string](16)

	s.Insert(7, "seven")
	if elem, ok := s.Lookup(7); ok {
		fmt.Println(*elem)
	}
	// Output: seven
}

// ExampleSet_Remove demonstrates that removal keeps the element storage dense.
func ExampleSet_Remove() {
	s := sparseset.New[uint32, string](16)
	s.Insert(2, "x")
	s.Insert(0, "y")
	s.Insert(3, "z")

	// Removing id 0 relocates the last element ("z") into its slot.
	s.Remove(0)
	fmt.Println(s.Len(), s.Values())
	// Output: 2 [x z]
}

// ExampleSet_Get demonstrates the loud-failure lookup path.
func ExampleSet_Get() {
	s := sparseset.New[uint32, int](8)
	s.Insert(3, 30)

	if _, err := s.Get(5); errors.Is(err, sparseset.ErrNotFound) {
		fmt.Println(err)
	}
	// Output: sparseset: id 5: identifier not found
}

// ExampleSet_Grow demonstrates explicit capacity management.
func ExampleSet_Grow() {
	s := sparseset.New[uint32, string](4)

	if _, err := s.Insert(9, "nine"); err != nil {
		fmt.Println(err)
	}
	s.Grow(16)
	inserted, _ := s.Insert(9, "nine")
	fmt.Println(inserted)
	// Output:
	// sparseset: id 9: identifier out of range
	// true
}

// ExampleSet_Iter demonstrates in-place mutation during iteration.
func ExampleSet_Iter() {
	s := sparseset.New[uint32, int](8)
	s.Insert(1, 10)
	s.Insert(2, 20)

	s.Iter(func(id uint32, elem *int) {
		*elem *= 2
	})
	fmt.Println(s.Values())
	// Output: [20 40]
}
