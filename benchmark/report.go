// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/bstree/fault"
)

// report formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// WriteReport - write results in one of the report formats
func WriteReport(w io.Writer, format string, results []Result) error {
	switch format {
	case FormatText, "":
		return writeText(w, results)
	case FormatJSON:
		return PrintJSON(w, results)
	case FormatYAML:
		return printYaml(w, results)
	default:
		return fault.ErrInvalidOutputFormat
	}
}

// one search time per line as seconds, bracketed by a header and
// a summary line
func writeText(w io.Writer, results []Result) error {
	for _, r := range results {
		_, err := fmt.Fprintf(w, "engine: %s  seed: %d  nodes: %d  inserted: %d  rejected: %d  height: %d  fill: %f\n",
			r.Engine, r.Seed, r.Nodes, r.Inserted, r.Rejected, r.Height, r.FillTime)
		if nil != err {
			return err
		}
		for _, t := range r.SearchTimes {
			if _, err := fmt.Fprintf(w, "%f\n", t); nil != err {
				return err
			}
		}
		_, err = fmt.Fprintf(w, "searches: %d  found: %d  total: %f  average: %f  deleted: %d  released: %d\n",
			len(r.SearchTimes), r.Found, r.TotalSearchTime(), r.AverageSearchTime(), r.Deleted, r.Released)
		if nil != err {
			return err
		}
	}
	return nil
}

// PrintJSON - indented JSON followed by a newline
func PrintJSON(w io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func printYaml(w io.Writer, message interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(message); nil != err {
		return err
	}
	return encoder.Close()
}
