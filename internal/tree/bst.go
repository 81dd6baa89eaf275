// This file is part of the recidx project.
// Author: Kevin Eder
// Creation date: 18.10.2026
// License: MIT
// Use of this source code is governed by a MIT license that can be found in the LICENSE file
// at https://github.com/kesimo/recidx/blob/main/LICENSE

package tree

import "cmp"

// node owns its key, its value and both child subtrees.
type node[K, V any] struct {
	key         K
	val         V
	left, right *node[K, V]
}

// BST is an unbalanced binary search tree. The insertion order determines its shape.
type BST[K, V any] struct {
	counter[K]
	root *node[K, V]
	size int
}

// NewBST creates an empty tree ordered by less.
func NewBST[K, V any](less func(a, b K) bool) *BST[K, V] {
	return &BST[K, V]{counter: newCounter(less)}
}

// NewOrderedBST creates an empty tree ordered by the natural order of K.
func NewOrderedBST[K cmp.Ordered, V any]() *BST[K, V] {
	return NewBST[K, V](cmp.Less[K])
}

// seek descends from the root and returns the link that holds key,
// or the nil link where key would be attached.
func (t *BST[K, V]) seek(key K) **node[K, V] {
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case t.lt(key, n.key):
			link = &n.left
		case t.lt(n.key, key):
			link = &n.right
		default:
			return link
		}
	}
	return link
}

// Insert sets the value for key. If the key already exists its value is replaced.
func (t *BST[K, V]) Insert(key K, val V) {
	link := t.seek(key)
	if *link != nil {
		(*link).val = val
		return
	}
	*link = &node[K, V]{key: key, val: val}
	t.size++
}

// Find returns a reference to the value of key.
// The reference is valid until key is erased or a key with two children is erased.
func (t *BST[K, V]) Find(key K) (*V, bool) {
	n := *t.seek(key)
	if n == nil {
		return nil, false
	}
	return &n.val, true
}

// Erase removes key from the tree.
// A node with two children takes over key and value of its in-order successor,
// the successor node is unlinked instead.
func (t *BST[K, V]) Erase(key K) bool {
	link := t.seek(key)
	n := *link
	if n == nil {
		return false
	}
	switch {
	case n.left == nil:
		*link = n.right
	case n.right == nil:
		*link = n.left
	default:
		succ := &n.right
		for (*succ).left != nil {
			succ = &(*succ).left
		}
		s := *succ
		n.key, n.val = s.key, s.val
		*succ = s.right
	}
	t.size--
	return true
}

// RangeApply visits all keys in [lo, hi] in ascending order.
// Subtrees that cannot hold keys of the range are skipped.
func (t *BST[K, V]) RangeApply(lo, hi K, visit func(key K, val *V)) {
	if visit == nil {
		return
	}
	t.rangeApply(t.root, lo, hi, visit)
}

func (t *BST[K, V]) rangeApply(n *node[K, V], lo, hi K, visit func(key K, val *V)) {
	if n == nil {
		return
	}
	if t.lt(lo, n.key) {
		t.rangeApply(n.left, lo, hi, visit)
	}
	if !t.lt(n.key, lo) && !t.lt(hi, n.key) {
		visit(n.key, &n.val)
	}
	if t.lt(n.key, hi) {
		t.rangeApply(n.right, lo, hi, visit)
	}
}

// Ascend visits all keys in ascending order until visit returns false.
// No comparisons are needed and none are counted.
func (t *BST[K, V]) Ascend(visit func(key K, val *V) bool) {
	if visit == nil {
		return
	}
	var stack []*node[K, V]
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n.key, &n.val) {
			return
		}
		n = n.right
	}
}

// Len returns the number of keys in the tree.
func (t *BST[K, V]) Len() int {
	return t.size
}

// Height returns the number of nodes on the longest root to leaf path.
func (t *BST[K, V]) Height() int {
	return height(t.root)
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}
