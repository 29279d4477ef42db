// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, nil if not present
func (tree *Tree) Search(key Item) *Node {
	if nil == key {
		return nil
	}
	return search(key, tree.root)
}

func search(key Item, tree *Node) *Node {
	for nil != tree {
		switch c := tree.key.Compare(key); {
		case c > 0: // tree.key > key
			tree = tree.left
		case c < 0: // tree.key < key
			tree = tree.right
		default:
			return tree
		}
	}
	return nil
}
