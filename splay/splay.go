package splay

// Outcome reports where a splay ended up relative to the item searched for.
type Outcome int

const (
	// Empty means the tree was empty; no root exists.
	Empty Outcome = iota
	// Found means the root now holds the item.
	Found
	// Successor means the item is absent and the root holds the least item
	// greater than it.
	Successor
	// Predecessor means the item is absent and the root holds the greatest
	// item less than it.
	Predecessor
)

func (o Outcome) String() string {
	switch o {
	case Empty:
		return "empty"
	case Found:
		return "found"
	case Successor:
		return "successor"
	case Predecessor:
		return "predecessor"
	}
	return "unknown"
}

// Indicator maps o to the signed convention: 0 when found, negative when the
// root is the successor, positive when it is the predecessor. The empty tree
// reports -1.
func (o Outcome) Indicator() int {
	switch o {
	case Found:
		return 0
	case Predecessor:
		return 1
	}
	return -1
}

func outcomeOf(c int) Outcome {
	if c < 0 {
		return Successor
	}
	if c > 0 {
		return Predecessor
	}
	return Found
}

// rotateRight lifts t.left above t and returns it. t.left must not be empty.
func rotateRight[T any](t *Tree[T]) *Tree[T] {
	y := t.left
	t.left, y.right = y.right, t
	return y
}

// rotateLeft lifts t.right above t and returns it. t.right must not be empty.
func rotateLeft[T any](t *Tree[T]) *Tree[T] {
	y := t.right
	t.right, y.left = y.left, t
	return y
}

// linkRight hangs t off the left slot of the right chain's last node, making t
// the new last node, and descends into t.left.
func linkRight[T any](r, t *Tree[T]) (*Tree[T], *Tree[T]) {
	r.left = t
	return t, t.left
}

// linkLeft hangs t off the right slot of the left chain's last node, making t
// the new last node, and descends into t.right.
func linkLeft[T any](l, t *Tree[T]) (*Tree[T], *Tree[T]) {
	l.right = t
	return t, t.right
}

// assemble makes t the root: its old children close off the two chains, and
// the chains (collected under header) become its new children.
func assemble[T any](header, l, r, t *Tree[T]) {
	l.right = t.left
	r.left = t.right
	t.left = header.right
	t.right = header.left
}

// Splay restructures t top-down so that item, or its in-order neighbor when
// item is absent, becomes the root. The returned Outcome says which.
//
// t is consumed: its nodes are relinked in place and the new root is
// returned.
//
// Complexity: amortized O(log n), O(n) for a single call.
func Splay[T any](compare Compare[T], item T, t *Tree[T]) (Outcome, *Tree[T]) {
	if t == nil {
		return Empty, t
	}

	// header.right collects the left chain, header.left the right chain
	var header Tree[T]
	l, r := &header, &header

	var c int
	for {
		c = compare(item, t.item)
		if c < 0 {
			if t.left == nil {
				break
			}
			if compare(item, t.left.item) < 0 {
				t = rotateRight(t)
				if t.left == nil {
					break
				}
			}
			r, t = linkRight(r, t)
		} else if c > 0 {
			if t.right == nil {
				break
			}
			if compare(item, t.right.item) > 0 {
				t = rotateLeft(t)
				if t.right == nil {
					break
				}
			}
			l, t = linkLeft(l, t)
		} else {
			break
		}
	}

	assemble(&header, l, r, t)
	return outcomeOf(c), t
}
