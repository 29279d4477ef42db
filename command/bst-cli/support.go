// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/benchmark"
	"github.com/bitmark-inc/bstree/fault"
)

// split a list of integers separated by commas and/or spaces
func parseKeys(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return ',' == r || ' ' == r || '\t' == r
	})
	keys := make([]int, 0, len(fields))
	for _, f := range fields {
		k, err := strconv.Atoi(f)
		if nil != err {
			return nil, fault.ErrInvalidKeyList
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// create the selected engine and fill it from the --keys, --random
// and positional arguments, then apply --delete
func buildTree(c *cli.Context, m *metadata) (benchmark.Engine, []int, error) {

	keys, err := parseKeys(c.String("keys"))
	if nil != err {
		return nil, nil, err
	}
	extra, err := parseKeys(strings.Join(c.Args(), " "))
	if nil != err {
		return nil, nil, err
	}
	keys = append(keys, extra...)

	if n := c.Int("random"); n > 0 {
		random, _ := benchmark.Generate(c.Int64("seed"), n, 0)
		keys = append(keys, random...)
	} else if n < 0 {
		return nil, nil, fault.ErrInvalidNodeCount
	}

	if 0 == len(keys) {
		return nil, nil, fault.ErrInvalidKeyList
	}

	deletes, err := parseKeys(c.String("delete"))
	if nil != err {
		return nil, nil, err
	}

	engine, err := benchmark.NewEngine(m.engine, m.limit)
	if nil != err {
		return nil, nil, err
	}

	for _, k := range keys {
		added, err := engine.Insert(k)
		if nil != err {
			return nil, nil, err
		}
		if m.verbose && !added {
			fmt.Fprintf(m.e, "duplicate key: %d\n", k)
		}
	}

	deleted := make([]int, 0, len(deletes))
	for _, k := range deletes {
		if engine.Delete(k) {
			deleted = append(deleted, k)
		} else if m.verbose {
			fmt.Fprintf(m.e, "absent key: %d\n", k)
		}
	}

	return engine, deleted, nil
}
