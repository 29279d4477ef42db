// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Colour - colour of a node
type Colour int

// node colours
const (
	Red   Colour = iota
	Black Colour = iota
)

// String - printable colour name
func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "*unknown*"
	}
}

// a node in the tree
type Node struct {
	left   *Node  // left sub-tree
	right  *Node  // right sub-tree
	up     *Node  // points to parent node, does not own it
	key    Item   // key part for ordering, nil only for the sentinel
	colour Colour // red or black
}

// per-tree node allocator
type allocator struct {
	pool   *Node // linked list of reclaimed nodes
	limit  int   // maximum live nodes, zero for no limit
	live   int   // nodes handed out and not yet reclaimed
	pooled int   // number of nodes in the pool
}

// allocate a new red node whose links all point to the sentinel,
// reuses reclaimed nodes if any are available
func (a *allocator) newNode(key Item, sentinel *Node) (*Node, error) {
	if 0 != a.limit && a.live >= a.limit {
		return nil, fault.ErrNodeLimitReached
	}
	a.live += 1

	p := a.pool
	if nil == p {
		if 0 != a.pooled {
			panic("pool corrupt")
		}
		p = &Node{}
	} else {
		a.pool = p.up
		a.pooled -= 1
	}

	p.key = key
	p.colour = Red
	p.left = sentinel
	p.right = sentinel
	p.up = sentinel // ensure freelist pointer is cleared
	return p, nil
}

// reclaim a node and keep it in a pool
func (a *allocator) freeNode(node *Node) {
	node.up = a.pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = nil
	node.colour = Black
	a.live -= 1
	a.pooled += 1

	a.pool = node
}
