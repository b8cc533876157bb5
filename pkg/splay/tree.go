// Copyright 2023 TiKV Project Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package splay

import (
	"io"

	"golang.org/x/exp/constraints"
)

// SplayTree is the map-like handle over the Node primitives. It holds the
// current root, which moves under splaying and removal, and a count of live
// nodes maintained only by the handle's own operations.
//
// A SplayTree is not safe for concurrent use: lookups restructure the tree,
// so even read-only access from several goroutines must be serialized
// externally around the whole handle.
type SplayTree[K constraints.Ordered, V any] struct {
	root   *Node[K, V]
	length int
}

// NewSplayTree creates an empty tree.
func NewSplayTree[K constraints.Ordered, V any]() *SplayTree[K, V] {
	return &SplayTree[K, V]{}
}

// Add inserts a (key, value) pair. Keys may repeat; every Add creates a
// distinct node.
func (t *SplayTree[K, V]) Add(key K, value V) {
	t.root = Insert(t.root, key, value)
	t.length++
}

// Get looks the key up and splays the hit to the root. Returns
// (zeroValue, false) when the key is absent, leaving the tree untouched.
func (t *SplayTree[K, V]) Get(key K) (_ V, _ bool) {
	root, n := Find(t.root, key)
	t.root = root
	if n == nil {
		return
	}
	return n.value, true
}

// Has returns true if the given key is in the tree.
func (t *SplayTree[K, V]) Has(key K) bool {
	_, found := t.Get(key)
	return found
}

// Delete removes one node holding the key and returns its value. The hit is
// splayed to the root first, so the removal itself is a root removal. When
// duplicates exist, one call removes one node. Returns (zeroValue, false)
// when the key is absent, leaving the tree untouched.
func (t *SplayTree[K, V]) Delete(key K) (_ V, _ bool) {
	root, n := Find(t.root, key)
	t.root = root
	if n == nil {
		return
	}
	value := n.value
	t.root = RemoveRoot(t.root)
	t.length--
	return value, true
}

// RootKey returns the key currently on top of the tree, or
// (zeroKey, false) when the tree is empty. Which key that is depends on
// the access history: the latest successful lookup or removal decides.
func (t *SplayTree[K, V]) RootKey() (_ K, _ bool) {
	if t.root == nil {
		return
	}
	return t.root.key, true
}

// Min returns the smallest key in the tree, or (zeroKey, false) when the
// tree is empty.
func (t *SplayTree[K, V]) Min() (_ K, _ bool) {
	if t.root == nil {
		return
	}
	n := t.root
	for n.children[0] != nil {
		n = n.children[0]
	}
	return n.key, true
}

// Max returns the largest key in the tree, or (zeroKey, false) when the
// tree is empty.
func (t *SplayTree[K, V]) Max() (_ K, _ bool) {
	if t.root == nil {
		return
	}
	n := t.root
	for n.children[1] != nil {
		n = n.children[1]
	}
	return n.key, true
}

// Len returns the number of nodes currently in the tree.
func (t *SplayTree[K, V]) Len() int {
	return t.length
}

// Clear removes every node from the tree and returns how many were
// released. The subtree is unlinked in post order rather than just
// dereferenced, so no interior pointer keeps the old graph alive.
func (t *SplayTree[K, V]) Clear() int {
	released := Clear(t.root)
	t.root, t.length = nil, 0
	return released
}

// Fprint writes the sideways rendering of the whole tree to w.
func (t *SplayTree[K, V]) Fprint(w io.Writer) {
	Fprint(w, t.root)
}
