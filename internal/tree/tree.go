// This file is part of the recidx project.
// Author: Kevin Eder
// Creation date: 18.10.2026
// License: MIT
// Use of this source code is governed by a MIT license that can be found in the LICENSE file
// at https://github.com/kesimo/recidx/blob/main/LICENSE

// Package tree provides ordered key/value indexes with comparison metering.
package tree

// Index is an ordered map with unique keys.
// Every implementation counts the key comparisons it performs until ResetMetrics is called.
// Implementations are not safe for concurrent use, lookups update the counter.
type Index[K, V any] interface {
	// Insert sets the value for key. An existing value is replaced in place.
	Insert(key K, val V)
	// Find returns a reference to the value stored for key.
	Find(key K) (val *V, ok bool)
	// Erase removes key and reports whether it was present.
	Erase(key K) bool
	// RangeApply calls visit for every key in [lo, hi] in ascending order.
	// visit may modify the value but must not call back into the index.
	RangeApply(lo, hi K, visit func(key K, val *V))
	// Ascend calls visit for every key in ascending order until visit returns false.
	Ascend(visit func(key K, val *V) bool)
	Len() int
	// Comparisons returns the number of key comparisons since the last ResetMetrics.
	Comparisons() int
	ResetMetrics()
}

// counter meters a less function.
type counter[K any] struct {
	less func(a, b K) bool
	n    int
}

func newCounter[K any](less func(a, b K) bool) counter[K] {
	if less == nil {
		less = func(a, b K) bool { return false }
	}
	return counter[K]{less: less}
}

// lt compares a and b and counts the comparison.
func (c *counter[K]) lt(a, b K) bool {
	c.n++
	return c.less(a, b)
}

func (c *counter[_]) Comparisons() int { return c.n }

func (c *counter[_]) ResetMetrics() { c.n = 0 }

var (
	_ Index[int, int] = (*BST[int, int])(nil)
	_ Index[int, int] = (*GBTree[int, int])(nil)
	_ Index[int, int] = (*GoogleBTree[int, int])(nil)
)
