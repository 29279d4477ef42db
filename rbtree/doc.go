// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rbtree - a red-black balanced binary search tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every tree owns a single black sentinel node which stands in for
// all absent children and for the parent of the root, so rotations
// and fixups never test for nil.  Only the sentinel's colour is ever
// read; its links are never written.
//
// The rules maintained after every insert and delete are:
//   1. the root is black
//   2. a red node has two black children
//   3. every path from a node down to the sentinel passes through
//      the same number of black nodes
//
// Keys are unique: inserting a key that is already present leaves the
// tree untouched.
package rbtree
