// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"github.com/bitmark-inc/bstree/fault"
)

// a thousand keys and fifty timed searches per engine
const (
	DefaultNodes    = 1000
	DefaultSearches = 50
)

// Configuration - parameters for a benchmark run
//
// Deletes removes that many of the probe keys after searching, a zero
// Seed selects a time based seed and a zero NodeLimit is unlimited
type Configuration struct {
	Nodes     int      `gluamapper:"nodes" json:"nodes" yaml:"nodes"`
	Searches  int      `gluamapper:"searches" json:"searches" yaml:"searches"`
	Deletes   int      `gluamapper:"deletes" json:"deletes" yaml:"deletes"`
	Seed      int64    `gluamapper:"seed" json:"seed" yaml:"seed"`
	Engines   []string `gluamapper:"engines" json:"engines" yaml:"engines"`
	NodeLimit int      `gluamapper:"node_limit" json:"node_limit" yaml:"node_limit"`
	Check     bool     `gluamapper:"check" json:"check" yaml:"check"`
}

// DefaultConfiguration - both engines with the default sizes
func DefaultConfiguration() Configuration {
	return Configuration{
		Nodes:     DefaultNodes,
		Searches:  DefaultSearches,
		Deletes:   0,
		Seed:      0,
		Engines:   []string{EngineAVL, EngineRedBlack},
		NodeLimit: 0,
		Check:     false,
	}
}

// Validate - reject configurations that cannot be run
func (conf *Configuration) Validate() error {
	if conf.Nodes < 1 {
		return fault.ErrInvalidNodeCount
	}
	if conf.Searches < 0 {
		return fault.ErrInvalidSearchCount
	}
	if conf.Deletes < 0 {
		return fault.ErrInvalidDeleteCount
	}
	if conf.NodeLimit < 0 {
		return fault.ErrInvalidNodeLimit
	}
	if 0 == len(conf.Engines) {
		return fault.ErrInvalidEngine
	}
	for _, name := range conf.Engines {
		if !IsValidEngine(name) {
			return fault.ErrInvalidEngine
		}
	}
	return nil
}
