// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"io"
	"strconv"

	"github.com/bitmark-inc/bstree/avl"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/rbtree"
)

// names of the available engines
const (
	EngineAVL      = "avl"
	EngineRedBlack = "rbtree"
)

//go:generate mockgen -source=engine.go -destination=mocks/engine.go -package=mocks

// Engine - the ordered set operations a benchmark drives
type Engine interface {
	Name() string
	Insert(key int) (bool, error)
	Delete(key int) bool
	Search(key int) bool
	Count() int
	Height() int
	Check() error
	Keys() []int
	PrintInOrder(w io.Writer) error
	Print(w io.Writer) int
	Free() int
}

// IsValidEngine - true for a known engine name
func IsValidEngine(name string) bool {
	switch name {
	case EngineAVL, EngineRedBlack:
		return true
	default:
		return false
	}
}

// NewEngine - create an empty tree of the named kind, a positive
// limit caps the number of nodes it can hold
func NewEngine(name string, limit int) (Engine, error) {
	if limit < 0 {
		return nil, fault.ErrInvalidNodeLimit
	}

	switch name {
	case EngineAVL:
		if 0 == limit {
			return &avlEngine{tree: avl.New()}, nil
		}
		tree, err := avl.NewLimited(limit)
		if nil != err {
			return nil, err
		}
		return &avlEngine{tree: tree}, nil

	case EngineRedBlack:
		if 0 == limit {
			return &rbEngine{tree: rbtree.New()}, nil
		}
		tree, err := rbtree.NewLimited(limit)
		if nil != err {
			return nil, err
		}
		return &rbEngine{tree: tree}, nil

	default:
		return nil, fault.ErrInvalidEngine
	}
}

// integer key, satisfies the Item interface of both engines
type intKey int

func (k intKey) Compare(x interface{}) int {
	j := x.(intKey)
	switch {
	case k < j:
		return -1
	case k > j:
		return +1
	default:
		return 0
	}
}

func (k intKey) String() string {
	return strconv.Itoa(int(k))
}

type avlEngine struct {
	tree *avl.Tree
}

func (e *avlEngine) Name() string                 { return EngineAVL }
func (e *avlEngine) Insert(key int) (bool, error) { return e.tree.Insert(intKey(key)) }
func (e *avlEngine) Delete(key int) bool          { return e.tree.Delete(intKey(key)) }
func (e *avlEngine) Search(key int) bool          { return nil != e.tree.Search(intKey(key)) }
func (e *avlEngine) Count() int                   { return e.tree.Count() }
func (e *avlEngine) Height() int                  { return e.tree.Height() }
func (e *avlEngine) Check() error                 { return e.tree.Check() }
func (e *avlEngine) Free() int                    { return e.tree.Free() }

func (e *avlEngine) PrintInOrder(w io.Writer) error { return e.tree.PrintInOrder(w) }
func (e *avlEngine) Print(w io.Writer) int          { return e.tree.Print(w) }

func (e *avlEngine) Keys() []int {
	items := e.tree.Keys()
	keys := make([]int, len(items))
	for i, item := range items {
		keys[i] = int(item.(intKey))
	}
	return keys
}

type rbEngine struct {
	tree *rbtree.Tree
}

func (e *rbEngine) Name() string                 { return EngineRedBlack }
func (e *rbEngine) Insert(key int) (bool, error) { return e.tree.Insert(intKey(key)) }
func (e *rbEngine) Delete(key int) bool          { return e.tree.Delete(intKey(key)) }
func (e *rbEngine) Search(key int) bool          { return nil != e.tree.Search(intKey(key)) }
func (e *rbEngine) Count() int                   { return e.tree.Count() }
func (e *rbEngine) Height() int                  { return e.tree.Height() }
func (e *rbEngine) Check() error                 { return e.tree.Check() }
func (e *rbEngine) Free() int                    { return e.tree.Free() }

func (e *rbEngine) PrintInOrder(w io.Writer) error { return e.tree.PrintInOrder(w) }
func (e *rbEngine) Print(w io.Writer) int          { return e.tree.Print(w) }

func (e *rbEngine) Keys() []int {
	items := e.tree.Keys()
	keys := make([]int, len(items))
	for i, item := range items {
		keys[i] = int(item.(intKey))
	}
	return keys
}
