// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/benchmark"
)

const (
	statsDelay = time.Second
	mega       = 1048576
)

// background process logging memory use and benchmark progress
type memstats struct {
	log *logger.L
}

func (state *memstats) Run(args interface{}, shutdown <-chan struct{}) {

	runner := args.(*benchmark.Runner)

loop:
	for {
		state.report(runner)

		select {
		case <-shutdown:
			break loop
		case <-time.After(statsDelay):
		}
	}
	state.report(runner)
}

func (state *memstats) report(runner *benchmark.Runner) {
	log := state.log

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	text, err := json.Marshal(m)
	if nil != err {
		log.Errorf("marshal error: %s", err)
	} else {
		log.Debugf("stats: %s", text)
	}
	a := m.Alloc / mega
	t := m.TotalAlloc / mega
	s := m.Sys / mega
	log.Infof("operations: %d  allocated: %d M  cumulative: %d M  OS virtual: %d M", runner.Operations(), a, t, s)
}
