package ntree

import "go.lepak.sg/ntree/seqs"

// The four traversal iterators share one contract:
//
//   - Next advances the iterator and reports whether a node is
//     available. It must be called before the first Item. Once it has
//     returned false it keeps returning false.
//   - Item returns the value at the current node. It panics when the
//     iterator is not positioned on a node: before the first Next,
//     after exhaustion, or when the iterator was built from nil.
//   - Node returns the current node, or nil when there is none. Two
//     iterators are at the same position exactly when their Node
//     results are the same pointer; two finished iterators both
//     return nil.
//
// All of them satisfy seqs.Iterator, so the algorithms in that package
// (and seqs.Seq, for range-over-func loops) accept any traversal
// order.
var (
	_ seqs.Iterator[string] = (*PreOrderIterator[string])(nil)
	_ seqs.Iterator[string] = (*PostOrderIterator[string])(nil)
	_ seqs.Iterator[string] = (*SiblingIterator[string])(nil)
	_ seqs.Iterator[string] = (*LeafIterator[string])(nil)
)

// leftmostLeaf descends along first children until it reaches a node
// without children: the first node of n's subtree in post-order.
func leftmostLeaf[T any](n *Node[T]) *Node[T] {
	for n.firstChild != nil {
		n = n.firstChild
	}
	return n
}

// itemAt reads the value under an iterator cursor, failing loudly when
// the cursor is not on a node.
func itemAt[T any](n *Node[T], kind string) T {
	if n == nil {
		panic("ntree: Item called on " + kind + " iterator with no current node")
	}
	return n.Value
}
