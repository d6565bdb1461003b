package ntree

import "iter"

// Tree owns a hierarchy of nodes rooted at a single head node. The
// head is created together with the tree, exists for the tree's whole
// life and cannot be removed.
type Tree[T any] struct {
	head *Node[T]
	size int
}

// New creates a tree whose head carries rootValue.
func New[T any](rootValue T) *Tree[T] {
	t := &Tree[T]{}
	t.head = &Node[T]{Value: rootValue, tree: t}
	t.size = 1
	return t
}

// Head returns the head node. It is never nil.
func (t *Tree[T]) Head() *Node[T] {
	return t.head
}

// Size reports the number of nodes in the tree, head included. It is
// maintained on every insertion and removal, so this is O(1).
func (t *Tree[T]) Size() int {
	return t.size
}

// clonePair tracks one source node and its copy while Clone walks the
// tree.
type clonePair[T any] struct {
	src *Node[T]
	dst *Node[T]
}

// Clone returns an independent deep copy of the tree: the same values
// in the same shape, sharing no nodes with the receiver. Values are
// copied by assignment, so pointer payloads still alias what they
// point to.
func (t *Tree[T]) Clone() *Tree[T] {
	clone := New(t.head.Value)

	stack := []clonePair[T]{{t.head, clone.head}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for c := p.src.firstChild; c != nil; c = c.nextSibling {
			stack = append(stack, clonePair[T]{c, p.dst.AppendChild(c.Value)})
		}
	}
	return clone
}

// PreOrder returns an iterator over the whole tree in pre-order: every
// node before any of its descendants.
func (t *Tree[T]) PreOrder() *PreOrderIterator[T] {
	return NewPreOrderIterator(t.head)
}

// PostOrder returns an iterator over the whole tree in post-order: all
// children before their parent. This is the tree's default order; it
// is also the order in which a subtree can be torn down node by node.
func (t *Tree[T]) PostOrder() *PostOrderIterator[T] {
	return NewPostOrderIterator(t.head)
}

// Leaves returns an iterator over the tree's childless nodes, left to
// right.
func (t *Tree[T]) Leaves() *LeafIterator[T] {
	return NewLeafIterator(t.head)
}

// All returns a range-over-func sequence of the tree's nodes in the
// default post-order:
//
//	for n := range tree.All() {
//		... n.Value may be read or replaced ...
//	}
func (t *Tree[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for it := t.PostOrder(); it.Next(); {
			if !yield(it.Node()) {
				return
			}
		}
	}
}

// Values is like All but yields the node payloads by value.
func (t *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := t.PostOrder(); it.Next(); {
			if !yield(it.Item()) {
				return
			}
		}
	}
}
