// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Insert - insert a new key into the tree
//
// returns true if a node was added, false if the key was already
// present in which case the tree is unchanged
func (tree *Tree) Insert(key Item) (bool, error) {
	if nil == key {
		return false, fault.ErrNilKey
	}
	root, added, err := tree.insert(key, tree.root)
	if nil != err {
		return false, err
	}
	tree.root = root
	if added {
		tree.count += 1
	}
	return added, nil
}

// internal routine for insert, returns the possibly new sub-tree root
func (tree *Tree) insert(key Item, p *Node) (*Node, bool, error) {
	if nil == p { // insert new node
		n, err := tree.pool.newNode(key)
		if nil != err {
			return nil, false, err
		}
		return n, true, nil
	}

	added := false
	err := error(nil)
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		p.left, added, err = tree.insert(key, p.left)
	case c < 0: // p.key < key
		p.right, added, err = tree.insert(key, p.right)
	default: // duplicate: nothing changes
		return p, false, nil
	}
	if nil != err || !added {
		return p, false, err
	}

	p.update()

	balance := p.Balance()
	if balance > 1 {
		if p.left.key.Compare(key) > 0 { // key < p.left.key
			// single LL rotation
			return rotateRight(p), true, nil
		}
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p), true, nil
	}
	if balance < -1 {
		if p.right.key.Compare(key) < 0 { // key > p.right.key
			// single RR rotation
			return rotateLeft(p), true, nil
		}
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p), true, nil
	}
	return p, true, nil
}
