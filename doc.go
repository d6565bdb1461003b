// Package ntree implements a generic n-ary tree: a hierarchy in which
// every node carries one value and an ordered list of children of any
// length. There is no ordering invariant over values and no balancing;
// siblings stay exactly where insertion (or SortChildren) put them.
// That makes the structure a fit for things that are trees by nature,
// like filesystem layouts, parse results or org charts, rather than
// for sorted-set workloads.
//
// A Tree is created around its permanent head node and grows through
// the nodes themselves:
//
//	tree := ntree.New("/")
//	usr := tree.Head().AppendChild("usr")
//	usr.AppendChild("bin")
//	usr.AppendChild("lib")
//	tree.Head().AppendChild("etc")
//
// Traversal is explicit about order. PreOrder visits parents before
// children, PostOrder (the default order, also behind All and Values)
// visits children first, Leaves visits only childless nodes, and
// NewSiblingIterator walks one generation. Every iterator also works
// with the algorithms in the seqs package:
//
//	names := seqs.Collect(tree.PreOrder())
//
// Iterators may start from any node, in which case they stay inside
// that node's subtree. Mutating the tree invalidates any iterator that
// was created before the mutation; advancing one afterwards is
// undefined. A Tree is not safe for concurrent use: readers may share
// it, but a writer needs exclusive access, which callers must arrange
// themselves (see the scan package for one way to do that).
package ntree
