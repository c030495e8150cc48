package splay

import "github.com/goose-lang/primitive"

// Has reports whether item is in t. The tree is splayed whether or not the
// item is found, and the splayed tree is returned in place of t.
func Has[T any](compare Compare[T], item T, t *Tree[T]) (bool, *Tree[T]) {
	if t == nil {
		return false, t
	}
	outcome, splayed := Splay(compare, item, t)
	return outcome == Found, splayed
}

// Insert adds item to t and returns the new tree. Inserting an item that is
// already present (compares equal to a stored item) leaves the stored item in
// place.
func Insert[T any](compare Compare[T], item T, t *Tree[T]) *Tree[T] {
	t, _ = insert(compare, item, t)
	return t
}

func insert[T any](compare Compare[T], item T, t *Tree[T]) (*Tree[T], bool) {
	if t == nil {
		return singletonTree(item), true
	}

	outcome, root := Splay(compare, item, t)
	switch outcome {
	case Successor:
		// root.left may already hold the assembled left chain; the new node
		// adopts it since every item there is less than item
		primitive.Assert(compare(item, root.item) < 0)
		root.left = &Tree[T]{item: item, left: root.left}
	case Predecessor:
		primitive.Assert(compare(root.item, item) < 0)
		root.right = &Tree[T]{item: item, right: root.right}
	default:
		return root, false
	}
	return root, true
}

// Build inserts items in order into an empty tree.
func Build[T any](compare Compare[T], items ...T) *Tree[T] {
	t := NewTree[T]()
	for _, item := range items {
		t = Insert(compare, item, t)
	}
	return t
}
