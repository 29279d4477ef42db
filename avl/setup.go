// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Item - a key item must implement the Compare function
//
// Compare returns a positive value if the item is greater than its
// argument, a negative value if it is less and zero if they are
// equal, only the sign is significant
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
	pool  allocator
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// NewLimited - create an empty tree that never holds more than
// maximum nodes
func NewLimited(maximum int) (*Tree, error) {
	if maximum < 1 {
		return nil, fault.ErrInvalidNodeLimit
	}
	tree := New()
	tree.pool.limit = maximum
	return tree, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - height of the whole tree, zero when empty
func (tree *Tree) Height() int {
	return tree.root.Height()
}

// Allocated - nodes currently linked into the tree and nodes waiting
// in the allocator's pool for reuse
func (tree *Tree) Allocated() (int, int) {
	return tree.pool.live, tree.pool.pooled
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Left - the left sub-tree, nil if absent
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right sub-tree, nil if absent
func (p *Node) Right() *Node {
	return p.right
}

// Height - height of the sub-tree rooted at this node, zero for an
// absent node
func (p *Node) Height() int {
	if nil == p {
		return 0
	}
	return p.height
}

// Balance - height(left) - height(right), always in [-1, +1] for a
// node of a consistent tree
func (p *Node) Balance() int {
	if nil == p {
		return 0
	}
	return p.left.Height() - p.right.Height()
}
