// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/benchmark"
	"github.com/bitmark-inc/bstree/fault"
)

type searchItem struct {
	Key   int  `json:"key"`
	Found bool `json:"found"`
}

type searchResult struct {
	Engine  string       `json:"engine"`
	Count   int          `json:"count"`
	Results []searchItem `json:"results"`
}

func runSearch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	find, err := parseKeys(c.String("find"))
	if nil != err {
		return err
	}
	if 0 == len(find) {
		return fault.ErrInvalidKeyList
	}

	engine, _, err := buildTree(c, m)
	if nil != err {
		return err
	}
	defer engine.Free()

	result := searchResult{
		Engine:  engine.Name(),
		Count:   engine.Count(),
		Results: make([]searchItem, len(find)),
	}
	for i, k := range find {
		result.Results[i] = searchItem{
			Key:   k,
			Found: engine.Search(k),
		}
	}
	return benchmark.PrintJSON(m.w, result)
}
