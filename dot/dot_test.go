package dot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.lepak.sg/ntree"
)

func identity(s string) string { return s }

func TestWrite(t *testing.T) {
	tree := ntree.New("F")
	tree.Head().AppendChild("B").AppendChild("A")
	tree.Head().AppendChild("G")

	var sb strings.Builder
	require.NoError(t, Write(&sb, tree, "letters", identity))

	want := `digraph letters {
	n0 [label="F"];
	n1 [label="B"];
	n2 [label="A"];
	n3 [label="G"];
	n0 -> n1;
	n1 -> n2;
	n0 -> n3;
}
`
	assert.Equal(t, want, sb.String())
}

func TestWriteSingleNode(t *testing.T) {
	tree := ntree.New(42)

	var sb strings.Builder
	require.NoError(t, Write(&sb, tree, "lonely", func(v int) string { return "42" }))

	assert.Equal(t, "digraph lonely {\n\tn0 [label=\"42\"];\n}\n", sb.String())
}

func TestWriteQuotesLabels(t *testing.T) {
	tree := ntree.New(`say "hi"`)
	tree.Head().AppendChild("tab\there")

	var sb strings.Builder
	require.NoError(t, Write(&sb, tree, "tricky", identity))

	got := sb.String()
	assert.Contains(t, got, `[label="say \"hi\""]`)
	assert.Contains(t, got, `[label="tab\there"]`)
}

func TestWriteDeterministic(t *testing.T) {
	tree := ntree.New("root")
	for _, v := range []string{"c", "a", "b"} {
		tree.Head().AppendChild(v)
	}

	var first, second strings.Builder
	require.NoError(t, Write(&first, tree, "g", identity))
	require.NoError(t, Write(&second, tree, "g", identity))
	assert.Equal(t, first.String(), second.String())
}

func TestWriteFile(t *testing.T) {
	tree := ntree.New("only")
	path := filepath.Join(t.TempDir(), "out.dot")

	require.NoError(t, WriteFile(path, tree, "g", identity))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "digraph g {\n\tn0 [label=\"only\"];\n}\n", string(data))
}
