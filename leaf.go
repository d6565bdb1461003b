package ntree

// LeafIterator visits only the childless nodes of a subtree, left to
// right, skipping every interior node. A start node that is itself a
// leaf (including the head of a single-node tree) is yielded alone.
type LeafIterator[T any] struct {
	root    *Node[T]
	at      *Node[T]
	started bool
}

// NewLeafIterator returns a leaf iterator over the subtree rooted at
// start. A nil start yields nothing.
func NewLeafIterator[T any](start *Node[T]) *LeafIterator[T] {
	return &LeafIterator[T]{root: start}
}

// Next advances to the next leaf. From the current leaf it climbs
// towards the start node until it finds a next sibling, then dives to
// that sibling's leftmost leaf.
func (it *LeafIterator[T]) Next() bool {
	if !it.started {
		it.started = true
		if it.root == nil {
			return false
		}
		it.at = leftmostLeaf(it.root)
		return true
	}
	if it.at == nil {
		return false
	}

	for cur := it.at; cur != it.root; cur = cur.parent {
		if cur.nextSibling != nil {
			it.at = leftmostLeaf(cur.nextSibling)
			return true
		}
	}
	it.at = nil
	return false
}

// Item returns the value at the current leaf.
func (it *LeafIterator[T]) Item() T {
	return itemAt(it.at, "a leaf")
}

// Node returns the current leaf, or nil if the iterator has not
// started or is exhausted.
func (it *LeafIterator[T]) Node() *Node[T] {
	return it.at
}
