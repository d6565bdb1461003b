package ntree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.lepak.sg/ntree/seqs"
)

func TestPostOrderIterator(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  []string
	}{
		{
			name:  "whole tree",
			start: "F",
			want:  []string{"A", "C", "E", "D", "B", "H", "I", "G", "F"},
		},
		{
			name:  "subtree with both grandchildren",
			start: "B",
			want:  []string{"A", "C", "E", "D", "B"},
		},
		{
			name:  "chain subtree",
			start: "G",
			want:  []string{"H", "I", "G"},
		},
		{
			name:  "leaf",
			start: "A",
			want:  []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := buildLetterTree()
			it := NewPostOrderIterator(findValue(t, tree, tt.start))

			assert.Equal(t, tt.want, seqs.Collect[string](it))
			assert.False(t, it.Next(), "exhausted iterator must stay exhausted")
			assert.Nil(t, it.Node())
		})
	}
}

func TestPostOrderIsDefaultOrder(t *testing.T) {
	tree := buildLetterTree()

	want := seqs.Collect[string](NewPostOrderIterator(tree.Head()))
	assert.Equal(t, want, seqs.Collect[string](tree.PostOrder()))

	var all []string
	for n := range tree.All() {
		all = append(all, n.Value)
	}
	assert.Equal(t, want, all)
}

func TestPostOrderStopsAtSubtreeBoundary(t *testing.T) {
	tree := buildLetterTree()

	// B has a next sibling in the full tree; a traversal rooted at B
	// must end at B rather than wander into G's subtree.
	it := NewPostOrderIterator(findValue(t, tree, "B"))
	var got []string
	for it.Next() {
		got = append(got, it.Item())
	}
	assert.Equal(t, []string{"A", "C", "E", "D", "B"}, got)
	assert.False(t, it.Next())
}

func TestPostOrderSingleNode(t *testing.T) {
	tree := New(99)
	it := tree.PostOrder()

	assert.True(t, it.Next())
	assert.Equal(t, 99, it.Item())
	assert.False(t, it.Next())
	assert.Nil(t, it.Node())
}

func TestPostOrderNilStart(t *testing.T) {
	it := NewPostOrderIterator[int](nil)

	assert.False(t, it.Next())
	assert.False(t, it.Next())
	assert.Panics(t, func() { it.Item() })
}

func TestPostOrderItemBeforeNextPanics(t *testing.T) {
	tree := buildLetterTree()
	it := tree.PostOrder()

	assert.Panics(t, func() { it.Item() })
}
