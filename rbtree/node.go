// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// only the sentinel is linked into a tree without a key
func (p *Node) isSentinel() bool {
	return nil == p.key
}

// internal: map the sentinel to nil for callers outside the package
func (p *Node) real() *Node {
	if nil == p || p.isSentinel() {
		return nil
	}
	return p
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Colour - the node's colour
func (p *Node) Colour() Colour {
	return p.colour
}

// IsRed - true for a red node
func (p *Node) IsRed() bool {
	return Red == p.colour
}

// Left - the left sub-tree, nil if absent
func (p *Node) Left() *Node {
	return p.left.real()
}

// Right - the right sub-tree, nil if absent
func (p *Node) Right() *Node {
	return p.right.real()
}

// Parent - return parent node of a node, nil for the root
func (p *Node) Parent() *Node {
	return p.up.real()
}
