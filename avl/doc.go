// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL height balanced binary search tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node records the height of its sub-tree (1 for a leaf) and
// after every insert or delete the nodes on the path back to the root
// recompute their height and are rotated whenever the heights of
// their two sub-trees differ by more than one.
//
// Keys are unique: inserting a key that is already present leaves the
// tree untouched.  Deleting a node never copies keys between nodes so
// a node returned by Search keeps its identity until it is itself
// deleted.
//
// Nodes are taken from a per-tree allocator which can optionally be
// limited, in which case Insert reports an error instead of growing
// the tree beyond the limit.
package avl
