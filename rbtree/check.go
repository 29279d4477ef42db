// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Check - verify the structure of the whole tree
//
// checks the sentinel, the colour rules, ordering, the up pointers
// and the node count; nil means the tree is consistent
func (tree *Tree) Check() error {
	s := tree.sentinel
	if Black != s.colour || nil != s.left || nil != s.right || nil != s.up || nil != s.key {
		return fault.ErrSentinelModified
	}
	if Black != tree.root.colour {
		return fault.ErrRootNotBlack
	}
	n, _, err := tree.check(tree.root, tree.sentinel, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count || n != tree.pool.live {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker, all keys of the sub-tree must lie
// strictly between low and high (nil for unbounded)
//
// returns the number of nodes and the black height
func (tree *Tree) check(p *Node, up *Node, low Item, high Item) (int, int, error) {
	if tree.sentinel == p {
		return 0, 0, nil
	}
	if p.up != up {
		return 0, 0, fault.ErrParentLinkMismatch
	}
	if nil != low && p.key.Compare(low) <= 0 {
		return 0, 0, fault.ErrOrderViolation
	}
	if nil != high && p.key.Compare(high) >= 0 {
		return 0, 0, fault.ErrOrderViolation
	}
	if Red == p.colour && (Red == p.left.colour || Red == p.right.colour) {
		return 0, 0, fault.ErrRedNodeHasRedChild
	}

	nl, bl, err := tree.check(p.left, p, low, p.key)
	if nil != err {
		return 0, 0, err
	}
	nr, br, err := tree.check(p.right, p, p.key, high)
	if nil != err {
		return 0, 0, err
	}
	if bl != br {
		return 0, 0, fault.ErrBlackHeightMismatch
	}
	if Black == p.colour {
		bl += 1
	}
	return 1 + nl + nr, bl, nil
}

// BlackHeight - number of black nodes on any path from the root down
// to and including the sentinel, excluding the root itself; zero for
// an empty tree
func (tree *Tree) BlackHeight() int {
	if tree.IsEmpty() {
		return 0
	}
	bh := 1 // the sentinel
	for p := tree.root.left; tree.sentinel != p; p = p.left {
		if Black == p.colour {
			bh += 1
		}
	}
	return bh
}
