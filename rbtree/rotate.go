// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// left rotation about x, x's right child takes its place
//
//      x                 y
//     / \               / \
//    a   y      →      x   c
//       / \           / \
//      b   c         a   b
//
// x and y must both be real nodes
func (tree *Tree) rotateLeft(x *Node) {
	y := x.right
	x.right = y.left
	if tree.sentinel != y.left {
		y.left.up = x
	}
	tree.replaceChild(x, y)
	y.left = x
	x.up = y
}

// right rotation about y, y's left child takes its place
func (tree *Tree) rotateRight(y *Node) {
	x := y.left
	y.left = x.right
	if tree.sentinel != x.right {
		x.right.up = y
	}
	tree.replaceChild(y, x)
	x.right = y
	y.up = x
}

// transplant: v takes u's place under u's parent
//
// the sentinel's own parent link is never written so when v is the
// sentinel the caller must track the parent itself
func (tree *Tree) replaceChild(u *Node, v *Node) {
	parent := u.up
	if tree.sentinel == parent {
		tree.root = v
	} else if u == parent.left {
		parent.left = v
	} else {
		parent.right = v
	}
	if tree.sentinel != v {
		v.up = parent
	}
}
