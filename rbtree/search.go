// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Search - find a specific item, nil if not present
func (tree *Tree) Search(key Item) *Node {
	if nil == key {
		return nil
	}
	return tree.search(key).real()
}

// internal search, returns the sentinel if not present
func (tree *Tree) search(key Item) *Node {
	p := tree.root
	for tree.sentinel != p {
		switch c := p.key.Compare(key); {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return p
}
