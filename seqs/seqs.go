// Package seqs defines a minimal iterator contract and the sequence
// algorithms that work against it.
//
// Anything exposing Next/Item can be consumed here: the traversal
// iterators in the ntree package all satisfy Iterator, as do ad-hoc
// iterators over slices or query results. The algorithms mirror the
// small loops everyone writes by hand (collect, count, for-each) so
// that call sites can stay declarative about what they do with a
// traversal rather than how they drain it.
package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Iterator describes some iterator over a data structure.
// Next must always be called before Item, even for the first round of
// iteration. If Next returns false, Item must not be called. Next may
// be called any number of times; once it has returned false it keeps
// returning false. Item may be called any number of times if the last
// call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := someTree.PostOrder()
//	for i.Next() {
//		v := i.Item()
//		... do stuff with v, or break ...
//	}
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Collect drains the iterator and returns everything it yielded, in
// yield order. An exhausted or empty iterator produces nil.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for it.Next() {
		out = append(out, it.Item())
	}
	return out
}

// Count drains the iterator and reports how many items it yielded.
func Count[T any](it Iterator[T]) int {
	n := 0
	for it.Next() {
		n++
	}
	return n
}

// CountFunc drains the iterator and reports how many items satisfied
// pred.
func CountFunc[T any](it Iterator[T], pred func(T) bool) int {
	n := 0
	for it.Next() {
		if pred(it.Item()) {
			n++
		}
	}
	return n
}

// ForEach calls f once for every remaining item of the iterator.
func ForEach[T any](it Iterator[T], f func(T)) {
	for it.Next() {
		f(it.Item())
	}
}

// Min drains the iterator and returns its smallest item. The second
// return is false if the iterator yielded nothing.
func Min[T constraints.Ordered](it Iterator[T]) (T, bool) {
	var min T
	if !it.Next() {
		return min, false
	}
	min = it.Item()
	for it.Next() {
		if v := it.Item(); v < min {
			min = v
		}
	}
	return min, true
}

// Max drains the iterator and returns its largest item. The second
// return is false if the iterator yielded nothing.
func Max[T constraints.Ordered](it Iterator[T]) (T, bool) {
	var max T
	if !it.Next() {
		return max, false
	}
	max = it.Item()
	for it.Next() {
		if v := it.Item(); v > max {
			max = v
		}
	}
	return max, true
}

// Seq adapts an Iterator to a range-over-func sequence:
//
//	for v := range seqs.Seq(tree.Leaves()) {
//		... breaking out early is fine ...
//	}
//
// The iterator is advanced lazily, so a loop that breaks leaves the
// rest of the traversal unvisited.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.Item()) {
				return
			}
		}
	}
}
