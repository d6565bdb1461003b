package ntree

// PreOrderIterator visits each node before any node in its subtree,
// children left to right. Built from a tree it covers the whole tree;
// built from a node it covers that node's subtree and never ascends
// past it.
//
// The traversal needs no extra state: from a node with children it
// steps to the first child, otherwise it climbs towards the start node
// looking for the nearest unvisited next sibling.
type PreOrderIterator[T any] struct {
	root    *Node[T]
	at      *Node[T]
	started bool
}

// NewPreOrderIterator returns a pre-order iterator over the subtree
// rooted at start. A nil start yields nothing.
func NewPreOrderIterator[T any](start *Node[T]) *PreOrderIterator[T] {
	return &PreOrderIterator[T]{root: start}
}

// Next advances to the next node in pre-order.
func (it *PreOrderIterator[T]) Next() bool {
	if !it.started {
		it.started = true
		it.at = it.root
		return it.at != nil
	}
	if it.at == nil {
		return false
	}

	if it.at.firstChild != nil {
		it.at = it.at.firstChild
		return true
	}
	for cur := it.at; cur != it.root; cur = cur.parent {
		if cur.nextSibling != nil {
			it.at = cur.nextSibling
			return true
		}
	}
	it.at = nil
	return false
}

// Item returns the value at the current node.
func (it *PreOrderIterator[T]) Item() T {
	return itemAt(it.at, "a pre-order")
}

// Node returns the current node, or nil if the iterator has not
// started or is exhausted.
func (it *PreOrderIterator[T]) Node() *Node[T] {
	return it.at
}
