// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// recompute the height of a node from its children
func (p *Node) update() {
	hl := p.left.Height()
	hr := p.right.Height()
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// single right rotation, the left child becomes the sub-tree root
//
//        p             p1
//       / \           /  \
//      p1  c   →     a    p
//     /  \               / \
//    a    b             b   c
func rotateRight(p *Node) *Node {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	// child first, then the new sub-tree root
	p.update()
	p1.update()
	return p1
}

// single left rotation, the right child becomes the sub-tree root
func rotateLeft(p *Node) *Node {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	p.update()
	p1.update()
	return p1
}

// delete: tree balancer
//
// the heavier child's own balance selects between a single and a
// double rotation
func rebalance(p *Node) *Node {
	p.update()
	switch b := p.Balance(); {
	case b > 1: // left branch too high
		if p.left.Balance() < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	case b < -1: // right branch too high
		if p.right.Balance() > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	}
	return p
}
