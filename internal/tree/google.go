// This file is part of the recidx project.
// Author: Kevin Eder
// Creation date: 19.10.2026
// License: MIT
// Use of this source code is governed by a MIT license that can be found in the LICENSE file
// at https://github.com/kesimo/recidx/blob/main/LICENSE

package tree

import (
	"cmp"

	"github.com/google/btree"
)

// DefaultDegree is the node degree used when a GoogleBTree is created with a degree below 2.
const DefaultDegree = 32

// GoogleBTree is an Index backed by a google b-tree.
type GoogleBTree[K, V any] struct {
	counter[K]
	tr *btree.BTreeG[*entry[K, V]]
}

// NewGoogleBTree creates an empty b-tree index with the given node degree ordered by less.
func NewGoogleBTree[K, V any](degree int, less func(a, b K) bool) *GoogleBTree[K, V] {
	if degree < 2 {
		degree = DefaultDegree
	}
	g := &GoogleBTree[K, V]{counter: newCounter(less)}
	g.tr = btree.NewG[*entry[K, V]](degree, func(a, b *entry[K, V]) bool {
		return g.lt(a.key, b.key)
	})
	return g
}

// NewOrderedGoogleBTree creates an empty b-tree index ordered by the natural order of K.
func NewOrderedGoogleBTree[K cmp.Ordered, V any](degree int) *GoogleBTree[K, V] {
	return NewGoogleBTree[K, V](degree, cmp.Less[K])
}

func (g *GoogleBTree[K, V]) Insert(key K, val V) {
	pivot := &entry[K, V]{key: key}
	if e, ok := g.tr.Get(pivot); ok {
		e.val = val
		return
	}
	pivot.val = val
	g.tr.ReplaceOrInsert(pivot)
}

func (g *GoogleBTree[K, V]) Find(key K) (*V, bool) {
	e, ok := g.tr.Get(&entry[K, V]{key: key})
	if !ok {
		return nil, false
	}
	return &e.val, true
}

func (g *GoogleBTree[K, V]) Erase(key K) bool {
	_, ok := g.tr.Delete(&entry[K, V]{key: key})
	return ok
}

func (g *GoogleBTree[K, V]) RangeApply(lo, hi K, visit func(key K, val *V)) {
	if visit == nil {
		return
	}
	g.tr.AscendGreaterOrEqual(&entry[K, V]{key: lo}, func(e *entry[K, V]) bool {
		if g.lt(hi, e.key) {
			return false
		}
		visit(e.key, &e.val)
		return true
	})
}

func (g *GoogleBTree[K, V]) Ascend(visit func(key K, val *V) bool) {
	if visit == nil {
		return
	}
	g.tr.Ascend(func(e *entry[K, V]) bool {
		return visit(e.key, &e.val)
	})
}

func (g *GoogleBTree[K, V]) Len() int {
	return g.tr.Len()
}
