// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Check - verify the structure of the whole tree
//
// ordering, stored heights, balance factors and the node count are
// all checked; nil means the tree is consistent
func (tree *Tree) Check() error {
	n, _, err := check(tree.root, nil, nil)
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
// returns the number of nodes and the computed height
func check(p *Node, low Item, high Item) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != low && p.key.Compare(low) <= 0 {
		return 0, 0, fault.ErrOrderViolation
	}
	if nil != high && p.key.Compare(high) >= 0 {
		return 0, 0, fault.ErrOrderViolation
	}

	nl, hl, err := check(p.left, low, p.key)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := check(p.right, p.key, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		return 0, 0, fault.ErrHeightMismatch
	}
	if b := hl - hr; b < -1 || b > 1 {
		return 0, 0, fault.ErrTreeUnbalanced
	}
	return 1 + nl + nr, h, nil
}
