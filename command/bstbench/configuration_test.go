// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/fault"
)

func makeTestDirectory(t *testing.T) string {
	dir, err := ioutil.TempDir("", "bstbench")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	return dir
}

func writeTestConfiguration(t *testing.T, dir string, text string) string {
	fileName := filepath.Join(dir, configurationFilename)
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}

func TestSampleConfiguration(t *testing.T) {
	dir := makeTestDirectory(t)
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, configurationFilename)
	err := writeSampleConfiguration(fileName)
	assert.Nil(t, err, "write sample")

	err = writeSampleConfiguration(fileName)
	assert.Equal(t, fault.ErrFileAlreadyExists, err, "sample overwritten")
	assert.True(t, fault.IsErrExists(err), "exists class")

	conf, err := getConfiguration(fileName)
	assert.Nil(t, err, "read sample")

	assert.Equal(t, filepath.Clean(dir)+string(filepath.Separator), conf.DataDirectory, "data directory")
	assert.Equal(t, "text", conf.Format, "format")
	assert.Equal(t, 1000, conf.Benchmark.Nodes, "nodes")
	assert.Equal(t, 50, conf.Benchmark.Searches, "searches")
	assert.Equal(t, []string{"avl", "rbtree"}, conf.Benchmark.Engines, "engines")
	assert.Equal(t, filepath.Join(dir, "log"), conf.Logging.Directory, "log directory")
	assert.Equal(t, "bstbench.log", conf.Logging.File, "log file")
	assert.Equal(t, "info", conf.Logging.Levels["benchmark"], "benchmark level")

	info, err := os.Stat(conf.Logging.Directory)
	assert.Nil(t, err, "log directory not created")
	assert.True(t, info.IsDir(), "log directory is not a directory")
}

func TestMinimalConfiguration(t *testing.T) {
	dir := makeTestDirectory(t)
	defer os.RemoveAll(dir)

	fileName := writeTestConfiguration(t, dir, `
return {
    format = "JSON",
    benchmark = {
        nodes = 10,
        engines = { "RBTree" },
    },
}
`)
	conf, err := getConfiguration(fileName)
	assert.Nil(t, err, "read")
	assert.Equal(t, "json", conf.Format, "format")
	assert.Equal(t, 10, conf.Benchmark.Nodes, "nodes")
	assert.Equal(t, 50, conf.Benchmark.Searches, "default searches")
	assert.Equal(t, []string{"rbtree"}, conf.Benchmark.Engines, "engines")
	assert.Equal(t, "info", conf.Logging.Levels["DEFAULT"], "default level")
}

func TestInvalidConfiguration(t *testing.T) {
	items := []struct {
		text string
		err  error
	}{
		{`return { format = "xml" }`, fault.ErrInvalidOutputFormat},
		{`return { benchmark = { nodes = 0 } }`, fault.ErrInvalidNodeCount},
		{`return { benchmark = { engines = { "splay" } } }`, fault.ErrInvalidEngine},
		{`return { benchmark = { node_limit = -1 } }`, fault.ErrInvalidNodeLimit},
		{`return "nodes"`, fault.ErrConfigurationNotTable},
	}

	for i, item := range items {
		dir := makeTestDirectory(t)
		fileName := writeTestConfiguration(t, dir, item.text)
		_, err := getConfiguration(fileName)
		assert.Equal(t, item.err, err, "%d: %s", i, item.text)
		os.RemoveAll(dir)
	}
}

func TestBadLogFile(t *testing.T) {
	dir := makeTestDirectory(t)
	defer os.RemoveAll(dir)

	fileName := writeTestConfiguration(t, dir, `return { logging = { file = "sub/x.log" } }`)
	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "log file with a path")
}

func TestFilenameWithDirectory(t *testing.T) {
	assert.Equal(t, "bstbench.conf", getFilenameWithDirectory(nil, configurationFilename), "default")
	assert.Equal(t, "/tmp/bstbench.conf", getFilenameWithDirectory([]string{"/tmp"}, configurationFilename), "directory")
}
