// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/benchmark"
)

type checkResult struct {
	Engine   string `json:"engine"`
	Count    int    `json:"count"`
	Height   int    `json:"height"`
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
	Released int    `json:"released"`
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	engine, _, err := buildTree(c, m)
	if nil != err {
		return err
	}

	result := checkResult{
		Engine: engine.Name(),
		Count:  engine.Count(),
		Height: engine.Height(),
		Valid:  true,
	}
	if err := engine.Check(); nil != err {
		result.Valid = false
		result.Error = err.Error()
	}
	result.Released = engine.Free()

	if err := benchmark.PrintJSON(m.w, result); nil != err {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("check failed: %s", result.Error)
	}
	return nil
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
