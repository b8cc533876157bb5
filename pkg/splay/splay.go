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

// Package splay implements an in-memory splay tree keyed on any ordered type.
//
// A splay tree is a self-adjusting binary search tree: a successful lookup
// restructures the path it walked so that the found node migrates to the
// top, under the assumption that recently accessed keys are likely to be
// accessed again soon. Restructuring applies one rotation-equivalent step
// per level of the search path; the classical zig-zig compression step is
// left out on purpose, which keeps every step local at the cost of weaker
// worst-case depth on adversarial access orders.
//
// The package has two layers. The package-level Node functions are the raw
// primitives, usable by other ordered structures: each takes a subtree root
// and returns the root that replaces it, because splaying and removal change
// which node is on top. SplayTree wraps the primitives into a map-like
// handle that tracks the current root and the element count.
//
// Equal keys are allowed and coexist as distinct nodes: insertion sends
// ties to the right, lookups stop at the first equal key on the search
// path, and removal takes one node per call.
package splay

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// Node is a single element of a splay tree. A node owns its two children,
// children[0] rooting the subtree of smaller keys and children[1] the
// subtree of larger-or-equal keys; the ownership graph is a strict
// hierarchy with no back links, so dropping a node drops its subtree.
type Node[K constraints.Ordered, V any] struct {
	children [2]*Node[K, V]
	key      K
	value    V
}

// Key returns the key the node was inserted with.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the value stored in the node.
func (n *Node[K, V]) Value() V {
	return n.value
}

// Insert adds a (key, value) pair to the subtree under root and returns the
// subtree root, which is the freshly allocated leaf only when root is nil.
// This is a plain unbalanced BST insert: nothing is restructured on the way
// back up. Ties descend to the right, so duplicate keys pile up as distinct
// nodes and later insertions of an equal key land below earlier ones.
func Insert[K constraints.Ordered, V any](root *Node[K, V], key K, value V) *Node[K, V] {
	if root == nil {
		return &Node[K, V]{key: key, value: value}
	}
	i := 0
	if root.key <= key {
		i = 1
	}
	root.children[i] = Insert(root.children[i], key, value)
	return root
}

// Find searches the subtree under root for key. On a hit it returns the new
// subtree root and the node holding the key; that node is the same pointer
// as the new root, because the splay steps walk it all the way up. On a
// miss it returns (root, nil) and the subtree keeps its exact shape: the
// rewiring below only runs once a hit is known, so a failed search never
// mutates anything.
//
// When several nodes share the key, the first one met on the search path is
// the hit; which duplicate that is depends on the current shape.
func Find[K constraints.Ordered, V any](root *Node[K, V], key K) (*Node[K, V], *Node[K, V]) {
	n := root
	if n == nil {
		return root, nil
	}
	if key != n.key {
		i := 0
		if key > n.key {
			i = 1
		}
		c := splay(n.children[i], &n, key, i)
		if c == nil {
			return root, nil
		}
		n.children[1-i] = c
	}
	return n, n
}

// splay is the recursive half of Find. n is the node under inspection, p
// points at the caller's variable holding n's parent, and i is the side of
// the parent the search came down on. Once the key is found, every
// unwinding frame lifts the found node one level: the parent hands its
// opposite-side child slot over, *p is repointed at n so the frame above
// sees the lifted node in the parent position, and the old parent is
// returned for the caller to adopt as the lifted node's opposite-side
// child. Misses return nil before any of that runs.
func splay[K constraints.Ordered, V any](n *Node[K, V], p **Node[K, V], key K, i int) *Node[K, V] {
	if n == nil {
		return nil
	}
	if key != n.key {
		j := 0
		if key > n.key {
			j = 1
		}
		c := splay(n.children[j], &n, key, j)
		if c == nil {
			return nil
		}
		n.children[1-j] = c
	}
	up := *p
	up.children[i] = n.children[1-i]
	*p = n
	return up
}

// RemoveRoot detaches the root node from its subtree and returns the root
// that replaces it. With no right child the left child is promoted.
// Otherwise the leftmost descendant of the right subtree is spliced out of
// its spot (its own right child taking its place under its parent) and
// adopts both of the old root's subtrees. Nothing else is restructured;
// this is not a splay operation, it only removes a node already on top.
// The detached node keeps its key and value but loses its children.
func RemoveRoot[K constraints.Ordered, V any](root *Node[K, V]) *Node[K, V] {
	if root == nil {
		return nil
	}
	var c *Node[K, V]
	if root.children[1] != nil {
		var p *Node[K, V]
		c = root.children[1]
		for c.children[0] != nil {
			p = c
			c = c.children[0]
		}
		if p != nil {
			p.children[0] = c.children[1]
			c.children[1] = root.children[1]
		}
		c.children[0] = root.children[0]
	} else {
		c = root.children[0]
	}
	root.children[0], root.children[1] = nil, nil
	return c
}

// Clear tears the subtree down in post order, unlinking every child pointer
// so the graph is handed to the GC leaf-first, and returns the number of
// nodes released.
func Clear[K constraints.Ordered, V any](root *Node[K, V]) int {
	if root == nil {
		return 0
	}
	released := Clear(root.children[0]) + Clear(root.children[1]) + 1
	root.children[0], root.children[1] = nil, nil
	return released
}

// Fprint renders the subtree sideways onto w, right subtree first so the
// page reads like the tree rotated a quarter turn counterclockwise. Each
// node prints as "<tag>:<key>" with two leading spaces per depth level; the
// entry node is tagged C, right and left descendants R and L.
func Fprint[K constraints.Ordered, V any](w io.Writer, root *Node[K, V]) {
	fprint(w, root, 'C', 0)
}

func fprint[K constraints.Ordered, V any](w io.Writer, n *Node[K, V], tag byte, depth int) {
	if n == nil {
		return
	}
	if n.children[1] != nil {
		fprint(w, n.children[1], 'R', depth+1)
	}
	fmt.Fprintf(w, "%s%c:%v\n", strings.Repeat("  ", depth), tag, n.key)
	if n.children[0] != nil {
		fprint(w, n.children[0], 'L', depth+1)
	}
}
