// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// Visitor - called for each key in ascending order, returning false
// stops the traversal
type Visitor func(key Item) bool

// InOrder - visit the keys in ascending order
func (tree *Tree) InOrder(visit Visitor) {
	inOrder(tree.root, visit)
}

// internal: returns false once the visitor asked to stop
func inOrder(p *Node, visit Visitor) bool {
	if nil == p {
		return true
	}
	if !inOrder(p.left, visit) {
		return false
	}
	if !visit(p.key) {
		return false
	}
	return inOrder(p.right, visit)
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
// children are always released before their parent
//
// returns the number of nodes released, the tree is empty afterwards
func (tree *Tree) Free() int {
	n := tree.release(tree.root)
	tree.root = nil
	tree.count = 0
	return n
}

func (tree *Tree) release(p *Node) int {
	if nil == p {
		return 0
	}
	n := tree.release(p.left)
	n += tree.release(p.right)
	tree.pool.freeNode(p)
	return n + 1
}
