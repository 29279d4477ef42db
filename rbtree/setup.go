// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

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

// Tree - type to hold the root node and the sentinel of a tree
type Tree struct {
	root     *Node
	sentinel *Node
	count    int
	pool     allocator
}

// New - create an initially empty tree
func New() *Tree {
	sentinel := &Node{
		colour: Black,
	}
	return &Tree{
		root:     sentinel,
		sentinel: sentinel,
		count:    0,
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
	return tree.sentinel == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree, nil if empty
func (tree *Tree) Root() *Node {
	return tree.root.real()
}

// Allocated - nodes currently linked into the tree and nodes waiting
// in the allocator's pool for reuse
func (tree *Tree) Allocated() (int, int) {
	return tree.pool.live, tree.pool.pooled
}

// Height - the longest path from the root, zero when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if p.isSentinel() {
		return 0
	}
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		return 1 + hl
	}
	return 1 + hr
}
