package ntree

import "slices"

// SortChildren reorders the node's direct children by value. cmp
// follows the slices.SortFunc convention: negative when a sorts before
// b, positive when b sorts before a, zero when equal. The relative
// order of children whose values compare equal is not specified.
//
// Each child keeps its own subtree; nothing outside this one sibling
// list moves, and the tree's size is unchanged. Sorting a whole tree
// is one pass of SortChildren over every node:
//
//	for n := range tree.All() {
//		n.SortChildren(cmp)
//	}
func (n *Node[T]) SortChildren(cmp func(a, b T) int) {
	if n.childCount < 2 {
		return
	}

	children := make([]*Node[T], 0, n.childCount)
	for c := n.firstChild; c != nil; c = c.nextSibling {
		children = append(children, c)
	}
	slices.SortFunc(children, func(a, b *Node[T]) int {
		return cmp(a.Value, b.Value)
	})

	n.firstChild = children[0]
	n.lastChild = children[len(children)-1]
	for i, c := range children {
		if i == 0 {
			c.prevSibling = nil
		} else {
			c.prevSibling = children[i-1]
		}
		if i == len(children)-1 {
			c.nextSibling = nil
		} else {
			c.nextSibling = children[i+1]
		}
	}
}
