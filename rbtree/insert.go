// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

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

	// find the parent of the new node
	y := tree.sentinel
	x := tree.root
	less := false
	for tree.sentinel != x {
		y = x
		switch c := x.key.Compare(key); {
		case c > 0: // x.key > key
			x = x.left
			less = true
		case c < 0: // x.key < key
			x = x.right
			less = false
		default: // duplicate: nothing changes
			return false, nil
		}
	}

	z, err := tree.pool.newNode(key, tree.sentinel)
	if nil != err {
		return false, err
	}

	z.up = y
	if tree.sentinel == y {
		tree.root = z
	} else if less {
		y.left = z
	} else {
		y.right = z
	}

	tree.insertFixup(z)
	tree.count += 1
	return true, nil
}

// restore the red-black rules after linking the red node z
//
// black heights are never disturbed, only a red parent of a red node
// needs repair
func (tree *Tree) insertFixup(z *Node) {
	for Red == z.up.colour {
		parent := z.up
		grandparent := parent.up // exists: a red node is never the root
		if parent == grandparent.left {
			uncle := grandparent.right
			if Red == uncle.colour {
				// recolour and continue from the grandparent
				parent.colour = Black
				uncle.colour = Black
				grandparent.colour = Red
				z = grandparent
				continue
			}
			if z == parent.right {
				// inner grandchild: straighten the line first
				z = parent
				tree.rotateLeft(z)
			}
			z.up.colour = Black
			z.up.up.colour = Red
			tree.rotateRight(z.up.up)
		} else {
			uncle := grandparent.left
			if Red == uncle.colour {
				parent.colour = Black
				uncle.colour = Black
				grandparent.colour = Red
				z = grandparent
				continue
			}
			if z == parent.left {
				z = parent
				tree.rotateRight(z)
			}
			z.up.colour = Black
			z.up.up.colour = Red
			tree.rotateLeft(z.up.up)
		}
	}
	tree.root.colour = Black
}
