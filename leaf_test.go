package ntree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.lepak.sg/ntree/seqs"
)

func TestLeafIterator(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  []string
	}{
		{
			name:  "whole tree",
			start: "F",
			want:  []string{"A", "C", "E", "H"},
		},
		{
			name:  "subtree with both grandchildren",
			start: "B",
			want:  []string{"A", "C", "E"},
		},
		{
			name:  "chain subtree",
			start: "G",
			want:  []string{"H"},
		},
		{
			name:  "start is itself a leaf",
			start: "E",
			want:  []string{"E"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := buildLetterTree()
			it := NewLeafIterator(findValue(t, tree, tt.start))

			assert.Equal(t, tt.want, seqs.Collect[string](it))
			assert.False(t, it.Next(), "exhausted iterator must stay exhausted")
			assert.Nil(t, it.Node())
		})
	}
}

func TestLeafIteratorSkipsInteriorNodes(t *testing.T) {
	tree := buildLetterTree()

	for it := tree.Leaves(); it.Next(); {
		assert.False(t, it.Node().HasChildren(),
			"%q is not a leaf", it.Item())
	}
}

func TestLeafSingleNodeTree(t *testing.T) {
	tree := New("solo")
	it := tree.Leaves()

	assert.True(t, it.Next())
	assert.Same(t, tree.Head(), it.Node())
	assert.False(t, it.Next())
	assert.Nil(t, it.Node())
}

func TestLeafAfterMutation(t *testing.T) {
	tree := buildLetterTree()

	// Removing D's children turns D into a leaf; a fresh iterator must
	// see the new shape.
	findValue(t, tree, "C").Remove()
	findValue(t, tree, "E").Remove()

	assert.Equal(t,
		[]string{"A", "D", "H"},
		seqs.Collect[string](tree.Leaves()))
}

func TestLeafNilStart(t *testing.T) {
	it := NewLeafIterator[string](nil)

	assert.False(t, it.Next())
	assert.Panics(t, func() { it.Item() })
}
