// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/bstree/fault"
)

// a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    Item  // key part for ordering
	height int   // 1 + max(left.height, right.height)
}

// per-tree node allocator
type allocator struct {
	pool   *Node // linked list of reclaimed nodes
	limit  int   // maximum live nodes, zero for no limit
	live   int   // nodes handed out and not yet reclaimed
	pooled int   // number of nodes in the pool
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (a *allocator) newNode(key Item) (*Node, error) {
	if 0 != a.limit && a.live >= a.limit {
		return nil, fault.ErrNodeLimitReached
	}
	a.live += 1

	if nil == a.pool {
		if 0 != a.pooled {
			panic("pool corrupt")
		}
		return &Node{
			key:    key,
			height: 1,
		}, nil
	}
	p := a.pool
	a.pool = p.right
	a.pooled -= 1

	p.key = key
	p.height = 1
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	return p, nil
}

// reclaim a node and keep it in a pool
func (a *allocator) freeNode(node *Node) {
	node.right = a.pool // use as free list pointer

	node.left = nil
	node.key = nil
	node.height = 0
	a.live -= 1
	a.pooled += 1

	a.pool = node
}
