// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/benchmark"
)

type buildResult struct {
	Engine  string `json:"engine"`
	Count   int    `json:"count"`
	Height  int    `json:"height"`
	Keys    []int  `json:"keys"`
	Deleted []int  `json:"deleted"`
}

func runBuild(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	engine, deleted, err := buildTree(c, m)
	if nil != err {
		return err
	}
	defer engine.Free()

	if c.Bool("draw") {
		engine.Print(m.w)
		return engine.PrintInOrder(m.w)
	}

	result := buildResult{
		Engine:  engine.Name(),
		Count:   engine.Count(),
		Height:  engine.Height(),
		Keys:    engine.Keys(),
		Deleted: deleted,
	}
	return benchmark.PrintJSON(m.w, result)
}
