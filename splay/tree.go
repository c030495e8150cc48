package splay

import "cmp"

// Compare is a three-way comparison of two items: negative if a < b, zero if
// they are equal, positive if a > b. It must be a total order.
type Compare[T any] func(a, b T) int

// Ordered returns the natural order of T.
func Ordered[T cmp.Ordered]() Compare[T] {
	return cmp.Compare[T]
}

// Tree is a node of a splay tree. The nil *Tree is the empty tree, and all
// methods accept a nil receiver unless noted.
//
// Each node owns its children. Operations that take a tree rewrite child
// links in place and return the tree's new root; the tree passed in must not
// be used afterwards. Use Clone to keep a copy of an earlier shape.
type Tree[T any] struct {
	item  T
	left  *Tree[T]
	right *Tree[T]
}

func NewTree[T any]() *Tree[T] {
	var t *Tree[T]
	return t
}

func singletonTree[T any](item T) *Tree[T] {
	return &Tree[T]{item: item}
}

// Item returns the item stored at the root. It panics on the empty tree.
func (t *Tree[T]) Item() T {
	if t == nil {
		panic("Item() called on empty tree")
	}
	return t.item
}

func (t *Tree[T]) Left() *Tree[T] {
	if t == nil {
		return nil
	}
	return t.left
}

func (t *Tree[T]) Right() *Tree[T] {
	if t == nil {
		return nil
	}
	return t.right
}

// Len counts the nodes of t.
//
// Complexity: O(n)
func (t *Tree[T]) Len() uint64 {
	if t == nil {
		return 0
	}
	return 1 + t.left.Len() + t.right.Len()
}

// Clone returns a deep copy of t sharing no nodes with it.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	return &Tree[T]{
		item:  t.item,
		left:  t.left.Clone(),
		right: t.right.Clone(),
	}
}
