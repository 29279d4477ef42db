// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/fault"
)

func runApp(t *testing.T, args ...string) (string, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"bst-cli"}, args...))
	return w.String(), err
}

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys("30,20, 40  10")
	assert.Nil(t, err, "parse")
	assert.Equal(t, []int{30, 20, 40, 10}, keys, "keys")

	keys, err = parseKeys("")
	assert.Nil(t, err, "parse empty")
	assert.Equal(t, 0, len(keys), "empty")

	_, err = parseKeys("1,two,3")
	assert.Equal(t, fault.ErrInvalidKeyList, err, "bad key")
}

func TestBuild(t *testing.T) {
	for _, engine := range []string{"avl", "rbtree"} {
		out, err := runApp(t, "--engine", engine, "build", "--keys", "30,20,40,10,25,35,50", "--delete", "30,99")
		assert.Nil(t, err, "%s: build", engine)

		var result buildResult
		assert.Nil(t, json.Unmarshal([]byte(out), &result), "%s: decode", engine)
		assert.Equal(t, engine, result.Engine, "engine")
		assert.Equal(t, 6, result.Count, "%s: count", engine)
		assert.Equal(t, []int{10, 20, 25, 35, 40, 50}, result.Keys, "%s: keys", engine)
		assert.Equal(t, []int{30}, result.Deleted, "%s: deleted", engine)
	}
}

func TestBuildArguments(t *testing.T) {
	out, err := runApp(t, "build", "3", "1", "2")
	assert.Nil(t, err, "build")

	var result buildResult
	assert.Nil(t, json.Unmarshal([]byte(out), &result), "decode")
	assert.Equal(t, []int{1, 2, 3}, result.Keys, "keys")
	assert.Equal(t, 2, result.Height, "height")
}

func TestBuildDraw(t *testing.T) {
	out, err := runApp(t, "-e", "rbtree", "build", "--draw", "--keys", "10,20,30")
	assert.Nil(t, err, "draw")
	assert.True(t, strings.Contains(out, "20 (black)"), "root colour:\n%s", out)
	assert.True(t, strings.Contains(out, "10 (red)"), "left colour:\n%s", out)
	assert.True(t, strings.HasSuffix(out, "10 20 30\n"), "in order:\n%s", out)
}

func TestBuildRandom(t *testing.T) {
	out, err := runApp(t, "build", "--random", "100", "--seed", "5")
	assert.Nil(t, err, "build")

	var result buildResult
	assert.Nil(t, json.Unmarshal([]byte(out), &result), "decode")
	assert.True(t, result.Count > 0 && result.Count <= 100, "count: %d", result.Count)
	for i := 1; i < len(result.Keys); i += 1 {
		assert.True(t, result.Keys[i-1] < result.Keys[i], "order at: %d", i)
	}
}

func TestSearch(t *testing.T) {
	out, err := runApp(t, "-e", "rb", "search", "--keys", "5,3,8", "--find", "3,4")
	assert.Nil(t, err, "search")

	var result searchResult
	assert.Nil(t, json.Unmarshal([]byte(out), &result), "decode")
	assert.Equal(t, "rbtree", result.Engine, "engine")
	assert.Equal(t, []searchItem{{Key: 3, Found: true}, {Key: 4, Found: false}}, result.Results, "results")

	_, err = runApp(t, "search", "--keys", "5")
	assert.Equal(t, fault.ErrInvalidKeyList, err, "missing find")
}

func TestCheck(t *testing.T) {
	out, err := runApp(t, "check", "--random", "500")
	assert.Nil(t, err, "check")

	var result checkResult
	assert.Nil(t, json.Unmarshal([]byte(out), &result), "decode")
	assert.True(t, result.Valid, "valid")
	assert.Equal(t, result.Count, result.Released, "released")
}

func TestLimit(t *testing.T) {
	_, err := runApp(t, "--limit", "2", "build", "--keys", "1,2,3")
	assert.Equal(t, fault.ErrNodeLimitReached, err, "limit")

	_, err = runApp(t, "--limit", "-1", "build", "--keys", "1")
	assert.Equal(t, fault.ErrInvalidNodeLimit, err, "negative limit")
}

func TestErrors(t *testing.T) {
	_, err := runApp(t, "--engine", "splay", "build", "--keys", "1")
	assert.Equal(t, fault.ErrInvalidEngine, err, "engine")

	_, err = runApp(t, "build")
	assert.Equal(t, fault.ErrInvalidKeyList, err, "no keys")

	_, err = runApp(t, "build", "--keys", "1,x")
	assert.Equal(t, fault.ErrInvalidKeyList, err, "bad keys")
}

func TestVersion(t *testing.T) {
	out, err := runApp(t, "version")
	assert.Nil(t, err, "version")
	assert.Equal(t, "zero\n", out, "version")
}
