package splay

import "sync"

// LockedSet is a Set safe for concurrent use. Since even lookups restructure
// the tree, every operation holds the lock exclusively.
type LockedSet[T any] struct {
	set *Set[T]
	mu  *sync.Mutex
}

func NewLockedSet[T any](compare Compare[T]) *LockedSet[T] {
	return &LockedSet[T]{set: NewSet(compare), mu: new(sync.Mutex)}
}

func (s *LockedSet[T]) Has(item T) bool {
	s.mu.Lock()
	found := s.set.Has(item)
	s.mu.Unlock()
	return found
}

func (s *LockedSet[T]) Insert(item T) bool {
	s.mu.Lock()
	added := s.set.Insert(item)
	s.mu.Unlock()
	return added
}

func (s *LockedSet[T]) Len() uint64 {
	s.mu.Lock()
	n := s.set.Len()
	s.mu.Unlock()
	return n
}

// Snapshot returns a copy of the current tree that later operations will not
// touch.
func (s *LockedSet[T]) Snapshot() *Tree[T] {
	s.mu.Lock()
	t := s.set.Root().Clone()
	s.mu.Unlock()
	return t
}
