package ntree

// Node is a single vertex of a Tree. Nodes are created by New (the
// head) or by AppendChild and PrependChild; the zero value is not
// usable. A node belongs to exactly one tree until Remove detaches it,
// after which it must not be used again.
//
// Value is the node's payload. It may be read or replaced in place at
// any time, including through the pointer returned by an iterator's
// Node method. The structural links are reachable only through
// accessors so that every mutation passes through the tree's
// bookkeeping.
type Node[T any] struct {
	Value T

	tree        *Tree[T]
	parent      *Node[T]
	firstChild  *Node[T]
	lastChild   *Node[T]
	prevSibling *Node[T]
	nextSibling *Node[T]
	childCount  int
}

// Parent returns the node's parent, or nil for the head.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// FirstChild returns the node's leftmost child, or nil if it has none.
func (n *Node[T]) FirstChild() *Node[T] {
	return n.firstChild
}

// LastChild returns the node's rightmost child, or nil if it has none.
func (n *Node[T]) LastChild() *Node[T] {
	return n.lastChild
}

// PrevSibling returns the sibling to the node's left, or nil if the
// node is its parent's first child.
func (n *Node[T]) PrevSibling() *Node[T] {
	return n.prevSibling
}

// NextSibling returns the sibling to the node's right, or nil if the
// node is its parent's last child.
func (n *Node[T]) NextSibling() *Node[T] {
	return n.nextSibling
}

// ChildCount reports the number of direct children. It is maintained
// on every insertion and removal, so this is O(1).
func (n *Node[T]) ChildCount() int {
	return n.childCount
}

// HasChildren reports whether the node has at least one child.
func (n *Node[T]) HasChildren() bool {
	return n.childCount != 0
}

// AppendChild creates a node carrying v as the new last child and
// returns it. Returning the child lets a path be built in one chain:
//
//	tree.Head().AppendChild("usr").AppendChild("local").AppendChild("bin")
//
// It panics if n has been removed from its tree.
func (n *Node[T]) AppendChild(v T) *Node[T] {
	if n.tree == nil {
		panic("ntree: AppendChild on a removed node")
	}

	child := &Node[T]{Value: v, tree: n.tree, parent: n}
	if n.lastChild == nil {
		n.firstChild = child
	} else {
		child.prevSibling = n.lastChild
		n.lastChild.nextSibling = child
	}
	n.lastChild = child
	n.childCount++
	n.tree.size++
	return child
}

// PrependChild creates a node carrying v as the new first child and
// returns it. It panics if n has been removed from its tree.
func (n *Node[T]) PrependChild(v T) *Node[T] {
	if n.tree == nil {
		panic("ntree: PrependChild on a removed node")
	}

	child := &Node[T]{Value: v, tree: n.tree, parent: n}
	if n.firstChild == nil {
		n.lastChild = child
	} else {
		child.nextSibling = n.firstChild
		n.firstChild.prevSibling = child
	}
	n.firstChild = child
	n.childCount++
	n.tree.size++
	return child
}

// CountDescendants walks the node's subtree and reports how many nodes
// are below it, not counting the node itself.
func (n *Node[T]) CountDescendants() int {
	count := 0
	stack := make([]*Node[T], 0, n.childCount)
	for c := n.firstChild; c != nil; c = c.nextSibling {
		stack = append(stack, c)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for c := cur.firstChild; c != nil; c = c.nextSibling {
			stack = append(stack, c)
		}
	}
	return count
}

// Depth reports the number of edges between the node and the head.
// The head itself is at depth zero.
func (n *Node[T]) Depth() int {
	depth := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		depth++
	}
	return depth
}

// Remove detaches the node and its whole subtree from the tree. The
// neighbouring siblings are spliced together, the parent's child count
// drops by one and the tree shrinks by one plus the number of
// descendants. Every node of the detached subtree is unlinked so that
// accidental reuse fails fast instead of silently corrupting the tree.
//
// Remove panics when called on the head or on a node that was already
// removed.
func (n *Node[T]) Remove() {
	t := n.tree
	if t == nil {
		panic("ntree: Remove on a removed node")
	}
	if n == t.head {
		panic("ntree: cannot remove the head node")
	}

	// Gather the whole subtree before any link changes.
	doomed := make([]*Node[T], 1, 1+n.childCount)
	doomed[0] = n
	for i := 0; i < len(doomed); i++ {
		for c := doomed[i].firstChild; c != nil; c = c.nextSibling {
			doomed = append(doomed, c)
		}
	}

	parent := n.parent
	if n.prevSibling != nil {
		n.prevSibling.nextSibling = n.nextSibling
	} else {
		parent.firstChild = n.nextSibling
	}
	if n.nextSibling != nil {
		n.nextSibling.prevSibling = n.prevSibling
	} else {
		parent.lastChild = n.prevSibling
	}
	parent.childCount--
	t.size -= len(doomed)

	for _, d := range doomed {
		d.tree = nil
		d.parent = nil
		d.firstChild = nil
		d.lastChild = nil
		d.prevSibling = nil
		d.nextSibling = nil
		d.childCount = 0
	}
}
