// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/util"
)

const (
	configurationFilename = "bstbench.conf"
)

// setup command handler
//
// commands that run without the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-config", "config":
		fileName := getFilenameWithDirectory(arguments, configurationFilename)
		if err := writeSampleConfiguration(fileName); nil != err {
			fmt.Printf("generate configuration: %q error: %s\n", fileName, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated configuration: %q\n", fileName)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--memory-stats] [--format=text|json|yaml] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-config [DIR]           (config) - create a sample configuration in: %q\n", "DIR/"+configurationFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the benchmark, same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	default: // unknown commands fall through to the benchmark
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

// write the sample configuration, never overwriting an existing file
func writeSampleConfiguration(fileName string) error {
	if util.EnsureFileExists(fileName) {
		return fault.ErrFileAlreadyExists
	}
	return ioutil.WriteFile(fileName, []byte(sampleConfiguration), 0600)
}

const sampleConfiguration = `-- bstbench.conf  -*- mode: lua -*-

local M = {}

-- directory for log files, "." is the directory of this file
M.data_directory = "."

-- report format: text, json or yaml
M.format = "text"

-- log memory statistics while running
M.memory_stats = false

M.benchmark = {
    -- keys are drawn from [0, nodes]
    nodes = 1000,
    searches = 50,

    -- remove this many of the searched keys afterwards
    deletes = 0,

    -- zero for a time based seed
    seed = 0,

    engines = { "avl", "rbtree" },

    -- maximum nodes per tree, zero for no limit
    node_limit = 0,

    -- verify tree invariants after filling and deleting
    check = false,
}

M.logging = {
    directory = "log",
    file = "bstbench.log",
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        DEFAULT = "info",
        main = "info",
        benchmark = "info",
        memory = "info",
    },
}

-- override from the environment
local nodes = os.getenv("BSTBENCH_NODES")
if nodes then
    M.benchmark.nodes = tonumber(nodes)
end

return M
`
