// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Delete - removes a specific item from the tree
//
// returns false if the key was not in the tree
func (tree *Tree) Delete(key Item) bool {
	if nil == key {
		return false
	}
	z := tree.search(key)
	if tree.sentinel == z {
		return false
	}
	tree.deleteNode(z)
	tree.count -= 1
	return true
}

// unlink z from the tree and return it to the pool
func (tree *Tree) deleteNode(z *Node) {
	removedColour := z.colour

	// x moves into the removed position, parent is tracked separately
	// because x may be the sentinel
	x := tree.sentinel
	parent := tree.sentinel

	if tree.sentinel == z.left {
		x = z.right
		parent = z.up
		tree.replaceChild(z, z.right)
	} else if tree.sentinel == z.right {
		x = z.left
		parent = z.up
		tree.replaceChild(z, z.left)
	} else {
		// in-order successor: leftmost of the right sub-tree
		y := z.right
		for tree.sentinel != y.left {
			y = y.left
		}
		removedColour = y.colour
		x = y.right
		if z == y.up {
			parent = y
		} else {
			parent = y.up
			tree.replaceChild(y, y.right)
			y.right = z.right
			y.right.up = y
		}
		tree.replaceChild(z, y)
		y.left = z.left
		y.left.up = y
		y.colour = z.colour
	}

	tree.pool.freeNode(z)

	if Black == removedColour {
		tree.deleteFixup(x, parent)
	}
}

// restore the black height after a black node was removed above x
//
// x carries an extra black; the loop pushes it up the tree or
// absorbs it with recolouring and at most three rotations
func (tree *Tree) deleteFixup(x *Node, parent *Node) {
	for tree.root != x && Black == x.colour {
		if x == parent.left {
			w := parent.right
			if Red == w.colour {
				w.colour = Black
				parent.colour = Red
				tree.rotateLeft(parent)
				w = parent.right
			}
			if Black == w.left.colour && Black == w.right.colour {
				w.colour = Red
				x = parent
				parent = x.up
				continue
			}
			if Black == w.right.colour {
				// near child red: rotate it over to the far side
				w.left.colour = Black
				w.colour = Red
				tree.rotateRight(w)
				w = parent.right
			}
			w.colour = parent.colour
			parent.colour = Black
			w.right.colour = Black
			tree.rotateLeft(parent)
			x = tree.root
		} else {
			w := parent.left
			if Red == w.colour {
				w.colour = Black
				parent.colour = Red
				tree.rotateRight(parent)
				w = parent.left
			}
			if Black == w.right.colour && Black == w.left.colour {
				w.colour = Red
				x = parent
				parent = x.up
				continue
			}
			if Black == w.left.colour {
				w.right.colour = Black
				w.colour = Red
				tree.rotateLeft(w)
				w = parent.left
			}
			w.colour = parent.colour
			parent.colour = Black
			w.left.colour = Black
			tree.rotateRight(parent)
			x = tree.root
		}
	}
	if tree.sentinel != x {
		x.colour = Black
	}
}
