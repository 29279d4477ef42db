// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
	"io"
)

// Visitor - called for each key in ascending order, returning false
// stops the traversal
type Visitor func(key Item) bool

// InOrder - visit the keys in ascending order
func (tree *Tree) InOrder(visit Visitor) {
	tree.inOrder(tree.root, visit)
}

// internal: returns false once the visitor asked to stop
func (tree *Tree) inOrder(p *Node, visit Visitor) bool {
	if tree.sentinel == p {
		return true
	}
	if !tree.inOrder(p.left, visit) {
		return false
	}
	if !visit(p.key) {
		return false
	}
	return tree.inOrder(p.right, visit)
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []Item {
	keys := make([]Item, 0, tree.count)
	tree.InOrder(func(key Item) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// PrintInOrder - write the keys in ascending order separated by
// spaces and terminated by a newline
func (tree *Tree) PrintInOrder(w io.Writer) error {
	err := error(nil)
	separator := ""
	tree.InOrder(func(key Item) bool {
		_, err = fmt.Fprintf(w, "%s%v", separator, key)
		separator = " "
		return nil == err
	})
	if nil != err {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

// Free - release every node back to the allocator, post-order so
// children are always released before their parent, the sentinel is
// reset last
//
// returns the number of nodes released, the tree is empty afterwards
func (tree *Tree) Free() int {
	n := tree.release(tree.root)
	tree.root = tree.sentinel
	tree.count = 0

	tree.sentinel.left = nil
	tree.sentinel.right = nil
	tree.sentinel.up = nil
	tree.sentinel.colour = Black
	return n
}

// recursion stops at the sentinel
func (tree *Tree) release(p *Node) int {
	if tree.sentinel == p {
		return 0
	}
	n := tree.release(p.left)
	n += tree.release(p.right)
	tree.pool.freeNode(p)
	return n + 1
}
