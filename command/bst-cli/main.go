// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/benchmark"
	"github.com/bitmark-inc/bstree/fault"
)

type metadata struct {
	engine  string
	limit   int
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "bst-cli"
	app.Usage = "build and inspect balanced binary search trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "engine, e",
			Value: benchmark.EngineAVL,
			Usage: " tree `ENGINE` [avl|rbtree]",
		},
		cli.IntFlag{
			Name:  "limit, l",
			Value: 0,
			Usage: " maximum nodes in the tree `COUNT`, zero for no limit",
		},
	}

	keyFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "keys, k",
			Value: "",
			Usage: "+comma separated integer keys to insert `KEYS`",
		},
		cli.IntFlag{
			Name:  "random, r",
			Value: 0,
			Usage: "+insert `COUNT` random keys drawn from [0, COUNT]",
		},
		cli.Int64Flag{
			Name:  "seed, s",
			Value: 1,
			Usage: " random number `SEED`",
		},
		cli.StringFlag{
			Name:  "delete, d",
			Value: "",
			Usage: " comma separated keys to delete after inserting `KEYS`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "insert and delete keys, display the resulting tree",
			ArgsUsage: "[KEY...]\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.BoolFlag{
					Name:  "draw, p",
					Usage: " draw the tree instead of JSON output",
				},
			}, keyFlags...),
			Action: runBuild,
		},
		{
			Name:      "search",
			Usage:     "build a tree and look up keys in it",
			ArgsUsage: "[KEY...]\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "find, f",
					Value: "",
					Usage: "*comma separated keys to search for `KEYS`",
				},
			}, keyFlags...),
			Action: runSearch,
		},
		{
			Name:      "check",
			Usage:     "build a tree and verify its invariants",
			ArgsUsage: "[KEY...]\n   (* = required, + = select one)",
			Flags:     keyFlags,
			Action:    runCheck,
		},
		{
			Name:      "version",
			Usage:     "display bst-cli version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		engine := strings.ToLower(c.GlobalString("engine"))
		switch engine {
		case "avl":
			engine = benchmark.EngineAVL
		case "rbtree", "rb", "red-black":
			engine = benchmark.EngineRedBlack
		default:
			return fault.ErrInvalidEngine
		}

		limit := c.GlobalInt("limit")
		if limit < 0 {
			return fault.ErrInvalidNodeLimit
		}

		verbose := c.GlobalBool("verbose")
		if verbose {
			fmt.Fprintf(c.App.ErrWriter, "engine: %s  limit: %d\n", engine, limit)
		}

		c.App.Metadata["config"] = &metadata{
			engine:  engine,
			limit:   limit,
			verbose: verbose,
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
