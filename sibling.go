package ntree

// SiblingIterator visits a node and then each of its next siblings in
// order. It never descends into children and never ascends to the
// parent. Unlike the other iterators it is only built from a node;
// starting at some parent's FirstChild walks that parent's entire
// child list.
type SiblingIterator[T any] struct {
	start   *Node[T]
	at      *Node[T]
	started bool
}

// NewSiblingIterator returns an iterator over start and the siblings
// to its right. A nil start yields nothing.
func NewSiblingIterator[T any](start *Node[T]) *SiblingIterator[T] {
	return &SiblingIterator[T]{start: start}
}

// Next advances to the next sibling.
func (it *SiblingIterator[T]) Next() bool {
	if !it.started {
		it.started = true
		it.at = it.start
		return it.at != nil
	}
	if it.at == nil {
		return false
	}
	it.at = it.at.nextSibling
	return it.at != nil
}

// Item returns the value at the current node.
func (it *SiblingIterator[T]) Item() T {
	return itemAt(it.at, "a sibling")
}

// Node returns the current node, or nil if the iterator has not
// started or is exhausted.
func (it *SiblingIterator[T]) Node() *Node[T] {
	return it.at
}
