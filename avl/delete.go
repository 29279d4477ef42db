// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns false if the key was not in the tree
func (tree *Tree) Delete(key Item) bool {
	if nil == key {
		return false
	}
	root, removed := tree.delete(key, tree.root)
	tree.root = root
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine, returns the possibly new sub-tree root
func (tree *Tree) delete(key Item, p *Node) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		p.left, removed = tree.delete(key, p.left)
	case c < 0: // p.key < key
		p.right, removed = tree.delete(key, p.right)
	default: // found: delete p
		q := p
		if nil == q.left {
			p = q.right
		} else if nil == q.right {
			p = q.left
		} else {
			// the in-order successor takes the place of q
			right, successor := detachFirst(q.right)
			successor.left = q.left
			successor.right = right
			p = successor
		}
		tree.pool.freeNode(q) // return deleted node to pool
		removed = true
		if nil == p {
			return nil, true
		}
	}
	if !removed {
		return p, false
	}
	return rebalance(p), true
}

// delete: unlink the lowest node of a sub-tree
//
// returns the rebalanced sub-tree and the detached node
func detachFirst(p *Node) (*Node, *Node) {
	if nil == p.left {
		return p.right, p
	}
	left, first := detachFirst(p.left)
	p.left = left
	return rebalance(p), first
}
