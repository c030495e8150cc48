package splay

import (
	"cmp"

	"github.com/goose-lang/std"
)

// Set is an ordered set of items backed by a splay tree. Every operation,
// including a lookup, restructures the tree. A Set is not safe for concurrent
// use; see LockedSet.
type Set[T any] struct {
	compare Compare[T]
	root    *Tree[T]
	size    uint64
}

func NewSet[T any](compare Compare[T]) *Set[T] {
	if compare == nil {
		panic("NewSet() called with nil comparator")
	}
	return &Set[T]{compare: compare, root: NewTree[T]()}
}

// NewOrderedSet returns a set ordered by the natural order of T.
func NewOrderedSet[T cmp.Ordered]() *Set[T] {
	return NewSet(Ordered[T]())
}

func (s *Set[T]) Has(item T) bool {
	found, root := Has(s.compare, item, s.root)
	s.root = root
	return found
}

// Insert adds item to the set, returning false if it was already present.
func (s *Set[T]) Insert(item T) bool {
	root, added := insert(s.compare, item, s.root)
	s.root = root
	if added {
		s.size = std.SumAssumeNoOverflow(s.size, 1)
	}
	return added
}

// Splay moves item, or its neighbor if absent, to the root.
func (s *Set[T]) Splay(item T) Outcome {
	outcome, root := Splay(s.compare, item, s.root)
	s.root = root
	return outcome
}

func (s *Set[T]) Len() uint64 {
	return s.size
}

// Root returns the current tree. It is owned by the set and is only valid
// until the next operation on s.
func (s *Set[T]) Root() *Tree[T] {
	return s.root
}

func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{
		compare: s.compare,
		root:    s.root.Clone(),
		size:    s.size,
	}
}
