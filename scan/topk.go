package scan

import (
	"container/heap"
	"sort"

	"go.lepak.sg/ntree"
)

// fileHeap is a min-heap on size, so the smallest of the current top k
// sits at the root ready to be evicted.
type fileHeap []FileInfo

var _ heap.Interface = (*fileHeap)(nil)

func (h fileHeap) Len() int {
	return len(h)
}

func (h fileHeap) Less(i, j int) bool {
	return h[i].Size < h[j].Size
}

func (h fileHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *fileHeap) Push(x any) {
	*h = append(*h, x.(FileInfo))
}

func (h *fileHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// LargestFiles returns the k largest regular files in a scanned tree,
// largest first. Directories and symlinks are ignored. If the tree
// holds fewer than k files the result is shorter; k below 1 returns
// nil. Memory use is O(k) regardless of tree size.
func LargestFiles(t *ntree.Tree[FileInfo], k int) []FileInfo {
	if k <= 0 {
		return nil
	}

	// Regular files never have children, so the leaf traversal visits
	// all of them without touching interior directories.
	h := make(fileHeap, 0, k)
	for it := t.Leaves(); it.Next(); {
		fi := it.Item()
		if fi.Type != Regular {
			continue
		}
		if len(h) < k {
			heap.Push(&h, fi)
		} else if fi.Size > h[0].Size {
			h[0] = fi
			heap.Fix(&h, 0)
		}
	}

	out := []FileInfo(h)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Size > out[j].Size
	})
	return out
}
