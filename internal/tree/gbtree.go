// This file is part of the recidx project.
// Author: Kevin Eder
// Creation date: 18.10.2026
// License: MIT
// Use of this source code is governed by a MIT license that can be found in the LICENSE file
// at https://github.com/kesimo/recidx/blob/main/LICENSE

package tree

import (
	"cmp"

	"github.com/tidwall/btree"
)

// entry is the item stored by the b-tree backends. Items are pointers so
// references to val stay valid while the tree reorganizes its nodes.
type entry[K, V any] struct {
	key K
	val V
}

// GBTree is an Index backed by a tidwall b-tree.
// Comparisons are counted inside the less function, so the count reflects
// the binary searches within the b-tree nodes.
type GBTree[K, V any] struct {
	counter[K]
	tr *btree.BTreeG[*entry[K, V]]
}

// NewGBTree creates an empty b-tree index ordered by less.
func NewGBTree[K, V any](less func(a, b K) bool) *GBTree[K, V] {
	gbt := &GBTree[K, V]{counter: newCounter(less)}
	// locking is left to the caller
	gbt.tr = btree.NewBTreeGOptions[*entry[K, V]](func(a, b *entry[K, V]) bool {
		return gbt.lt(a.key, b.key)
	}, btree.Options{NoLocks: true})
	return gbt
}

// NewOrderedGBTree creates an empty b-tree index ordered by the natural order of K.
func NewOrderedGBTree[K cmp.Ordered, V any]() *GBTree[K, V] {
	return NewGBTree[K, V](cmp.Less[K])
}

// Insert sets the value for key. If the key already exists its value is replaced in place.
func (gbt *GBTree[K, V]) Insert(key K, val V) {
	pivot := &entry[K, V]{key: key}
	if e, ok := gbt.tr.GetHint(pivot, nil); ok {
		e.val = val
		return
	}
	pivot.val = val
	gbt.tr.SetHint(pivot, nil)
}

// Find returns a reference to the value of key.
func (gbt *GBTree[K, V]) Find(key K) (*V, bool) {
	e, ok := gbt.tr.GetHint(&entry[K, V]{key: key}, nil)
	if !ok {
		return nil, false
	}
	return &e.val, true
}

// Erase removes key from the tree.
func (gbt *GBTree[K, V]) Erase(key K) bool {
	_, ok := gbt.tr.DeleteHint(&entry[K, V]{key: key}, nil)
	return ok
}

// RangeApply visits all keys in [lo, hi] in ascending order.
// The scan starts at the first key >= lo and stops at the first key > hi.
func (gbt *GBTree[K, V]) RangeApply(lo, hi K, visit func(key K, val *V)) {
	if visit == nil {
		return
	}
	gbt.tr.Ascend(&entry[K, V]{key: lo}, func(e *entry[K, V]) bool {
		if gbt.lt(hi, e.key) {
			return false
		}
		visit(e.key, &e.val)
		return true
	})
}

// Ascend visits all keys in ascending order until visit returns false.
func (gbt *GBTree[K, V]) Ascend(visit func(key K, val *V) bool) {
	if visit == nil {
		return
	}
	gbt.tr.Scan(func(e *entry[K, V]) bool {
		return visit(e.key, &e.val)
	})
}

// Len returns the number of keys in the tree.
func (gbt *GBTree[K, V]) Len() int {
	return gbt.tr.Len()
}

// Min returns the smallest key.
func (gbt *GBTree[K, V]) Min() (key K, ok bool) {
	e, ok := gbt.tr.Min()
	if !ok {
		return key, false
	}
	return e.key, true
}

// Max returns the largest key.
func (gbt *GBTree[K, V]) Max() (key K, ok bool) {
	e, ok := gbt.tr.Max()
	if !ok {
		return key, false
	}
	return e.key, true
}
