// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/bstree/benchmark"
	"github.com/bitmark-inc/bstree/fault"
)

var testResults = []benchmark.Result{
	{
		Engine:      "avl",
		Seed:        1,
		Nodes:       10,
		Inserted:    7,
		Height:      3,
		SearchTimes: []float64{0.000001, 0.000003},
		Found:       1,
		Released:    7,
	},
}

func TestAverage(t *testing.T) {
	r := testResults[0]
	assert.InDelta(t, 0.000004, r.TotalSearchTime(), 1e-12, "total")
	assert.InDelta(t, 0.000002, r.AverageSearchTime(), 1e-12, "average")

	empty := benchmark.Result{}
	assert.Equal(t, 0.0, empty.AverageSearchTime(), "empty average")
}

func TestReportText(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := benchmark.WriteReport(buffer, benchmark.FormatText, testResults)
	assert.Nil(t, err, "write")

	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
	assert.Equal(t, 4, len(lines), "line count")
	assert.True(t, strings.HasPrefix(lines[0], "engine: avl  seed: 1  nodes: 10  inserted: 7"), "header: %q", lines[0])
	assert.Equal(t, "0.000001", lines[1], "first time")
	assert.Equal(t, "0.000003", lines[2], "second time")
	assert.True(t, strings.HasPrefix(lines[3], "searches: 2  found: 1"), "summary: %q", lines[3])
}

func TestReportJSON(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := benchmark.WriteReport(buffer, benchmark.FormatJSON, testResults)
	assert.Nil(t, err, "write")

	var decoded []map[string]interface{}
	err = json.Unmarshal(buffer.Bytes(), &decoded)
	assert.Nil(t, err, "decode")
	assert.Equal(t, 1, len(decoded), "result count")
	assert.Equal(t, "avl", decoded[0]["engine"], "engine")
	assert.Equal(t, 7.0, decoded[0]["inserted"], "inserted")
	assert.Equal(t, 2, len(decoded[0]["search_seconds"].([]interface{})), "searches")
}

func TestReportYAML(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := benchmark.WriteReport(buffer, benchmark.FormatYAML, testResults)
	assert.Nil(t, err, "write")

	var decoded []benchmark.Result
	err = yaml.Unmarshal(buffer.Bytes(), &decoded)
	assert.Nil(t, err, "decode")
	assert.Equal(t, testResults, decoded, "round trip")
}

func TestReportInvalid(t *testing.T) {
	err := benchmark.WriteReport(&bytes.Buffer{}, "xml", testResults)
	assert.Equal(t, fault.ErrInvalidOutputFormat, err, "format")
}

type failWriter struct{}

var errWriteFailed = errors.New("write failed")

func (failWriter) Write(p []byte) (int, error) {
	return 0, errWriteFailed
}

func TestReportWriteError(t *testing.T) {
	for _, format := range []string{benchmark.FormatText, benchmark.FormatJSON, benchmark.FormatYAML} {
		err := benchmark.WriteReport(failWriter{}, format, testResults)
		assert.NotNil(t, err, "%s: write error not returned", format)
	}

	err := benchmark.PrintJSON(failWriter{}, map[string]int{"count": 1})
	assert.Equal(t, errWriteFailed, err, "print json")
}
