package ntree

// PostOrderIterator visits every node after all of its descendants,
// children left to right. This is the tree's default order: Tree.All,
// Tree.Values and Tree.PostOrder use it, and it is the order in which
// a subtree can be removed node by node without ever touching a
// detached ancestor.
type PostOrderIterator[T any] struct {
	root    *Node[T]
	at      *Node[T]
	started bool
}

// NewPostOrderIterator returns a post-order iterator over the subtree
// rooted at start. A nil start yields nothing.
func NewPostOrderIterator[T any](start *Node[T]) *PostOrderIterator[T] {
	return &PostOrderIterator[T]{root: start}
}

// Next advances to the next node in post-order. The first node is the
// start's leftmost leaf; the start node itself comes last.
func (it *PostOrderIterator[T]) Next() bool {
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

	if it.at == it.root {
		it.at = nil
		return false
	}
	if it.at.nextSibling != nil {
		it.at = leftmostLeaf(it.at.nextSibling)
		return true
	}
	it.at = it.at.parent
	return true
}

// Item returns the value at the current node.
func (it *PostOrderIterator[T]) Item() T {
	return itemAt(it.at, "a post-order")
}

// Node returns the current node, or nil if the iterator has not
// started or is exhausted.
func (it *PostOrderIterator[T]) Node() *Node[T] {
	return it.at
}
