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
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// perm returns a random permutation of the ints in [0, n).
func perm(n int) []int {
	return rand.Perm(n)
}

// buildTree inserts the keys in order, using each key's position in the
// slice as its value.
func buildTree(keys []int) *Node[int, int] {
	var root *Node[int, int]
	for i, k := range keys {
		root = Insert(root, k, i)
	}
	return root
}

// inorderKeys extracts all keys of the subtree in order as a slice.
func inorderKeys(n *Node[int, int]) (out []int) {
	if n == nil {
		return nil
	}
	out = append(out, inorderKeys(n.children[0])...)
	out = append(out, n.key)
	return append(out, inorderKeys(n.children[1])...)
}

func TestInsertKeepsOrder(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	for _, size := range []int{1, 2, 16, 128, 1024} {
		root := buildTree(perm(size))
		keys := inorderKeys(root)
		re.Len(keys, size)
		re.True(sort.IntsAreSorted(keys))
	}
}

func TestFindSplaysHitToRoot(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	root := buildTree(perm(128))
	for _, k := range perm(128) {
		var hit *Node[int, int]
		root, hit = Find(root, k)
		re.NotNil(hit)
		re.Same(root, hit)
		re.Equal(k, root.key)
	}
	// the shape changed under every lookup but the order never does
	keys := inorderKeys(root)
	re.Len(keys, 128)
	re.True(sort.IntsAreSorted(keys))
}

func TestFindMissIsNoOp(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	var root *Node[int, int]
	for i, k := range perm(64) {
		root = Insert(root, 2*k+1, i) // odd keys only
	}
	before := new(bytes.Buffer)
	Fprint(before, root)
	oldRoot := root
	for miss := 0; miss <= 128; miss += 2 {
		newRoot, hit := Find(root, miss)
		re.Nil(hit)
		re.Same(oldRoot, newRoot)
	}
	after := new(bytes.Buffer)
	Fprint(after, root)
	re.Equal(before.String(), after.String())
}

func TestFindEmpty(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	root, hit := Find[int, int](nil, 42)
	re.Nil(root)
	re.Nil(hit)
}

func TestRemoveRoot(t *testing.T) {
	t.Parallel()
	re := require.New(t)

	re.Nil(RemoveRoot[int, int](nil))

	// single node
	root := buildTree([]int{5})
	re.Nil(RemoveRoot(root))

	// no right child: the left child is promoted
	root = buildTree([]int{5, 3, 1})
	root = RemoveRoot(root)
	re.Equal(3, root.key)
	re.Equal([]int{1, 3}, inorderKeys(root))

	// the right child has no left descendant: it takes over directly
	root = buildTree([]int{5, 3, 7})
	root = RemoveRoot(root)
	re.Equal(7, root.key)
	re.Equal([]int{3, 7}, inorderKeys(root))

	// deep successor with a right child of its own: 7 is spliced out from
	// under 10, its child 8 taking its place
	root = buildTree([]int{5, 3, 10, 7, 8})
	root = RemoveRoot(root)
	re.Equal(7, root.key)
	re.Equal(10, root.children[1].key)
	re.Equal(8, root.children[1].children[0].key)
	re.Equal([]int{3, 7, 8, 10}, inorderKeys(root))
}

func TestRemoveRootRandomized(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	root := buildTree(perm(256))
	for want := 256; want > 0; want-- {
		keys := inorderKeys(root)
		re.Len(keys, want)
		re.True(sort.IntsAreSorted(keys))
		root = RemoveRoot(root)
	}
	re.Nil(root)
}

func TestClear(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	re.Equal(0, Clear[int, int](nil))
	root := buildTree(perm(100))
	re.Equal(100, Clear(root))
	// the root node survives as a detached leaf
	re.Nil(root.children[0])
	re.Nil(root.children[1])
}

func TestFprintFormat(t *testing.T) {
	t.Parallel()
	re := require.New(t)

	buf := new(bytes.Buffer)
	Fprint[int, int](buf, nil)
	re.Empty(buf.String())

	root := buildTree([]int{2, 1, 3, 4})
	buf.Reset()
	Fprint(buf, root)
	re.Equal("    R:4\n  R:3\nC:2\n  L:1\n", buf.String())
}

func TestDuplicateKeysDescendRight(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	var root *Node[int, int]
	for i := 0; i < 3; i++ {
		root = Insert(root, 7, i)
	}
	// ties go right on insert, so the first insertion stays on top
	re.Equal(0, root.value)
	re.Nil(root.children[0])
	re.Equal(1, root.children[1].value)
	re.Equal(2, root.children[1].children[1].value)

	root, hit := Find(root, 7)
	re.NotNil(hit)
	re.Equal(7, hit.key)
	re.Equal([]int{7, 7, 7}, inorderKeys(root))
}
