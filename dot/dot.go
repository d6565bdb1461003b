// Package dot renders a tree as a Graphviz DOT document: one node
// statement per tree node and one edge per parent-child link. The
// output of a given tree is deterministic, so it diffs cleanly and
// pipes straight into dot(1).
package dot

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.lepak.sg/ntree"
)

// Write renders t to w as a digraph called name (which must be a valid
// DOT identifier). Nodes are declared in pre-order and named n0, n1,
// ... in that order; label turns each node's value into the text shown
// for it and may return anything, quoting is handled here.
func Write[T any](w io.Writer, t *ntree.Tree[T], name string, label func(T) string) error {
	ids := make(map[*ntree.Node[T]]int, t.Size())

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", name)

	next := 0
	for it := t.PreOrder(); it.Next(); next++ {
		ids[it.Node()] = next
		fmt.Fprintf(&b, "\tn%d [label=%s];\n", next, strconv.Quote(label(it.Item())))
	}
	for it := t.PreOrder(); it.Next(); {
		n := it.Node()
		if p := n.Parent(); p != nil {
			fmt.Fprintf(&b, "\tn%d -> n%d;\n", ids[p], ids[n])
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile renders t into the file at path, creating or truncating
// it.
func WriteFile[T any](path string, t *ntree.Tree[T], name string, label func(T) string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, t, name, label); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
