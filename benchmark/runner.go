// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/counter"
	"github.com/bitmark-inc/bstree/fault"
)

// Runner - a validated configuration and the progress of its run
type Runner struct {
	conf       Configuration
	log        *logger.L
	operations counter.Counter
}

// Result - measurements for one engine
type Result struct {
	Engine      string    `json:"engine" yaml:"engine"`
	Seed        int64     `json:"seed" yaml:"seed"`
	Nodes       int       `json:"nodes" yaml:"nodes"`       // keys offered to the tree
	Inserted    int       `json:"inserted" yaml:"inserted"` // distinct keys stored
	Rejected    int       `json:"rejected" yaml:"rejected"` // refused by the node limit
	Height      int       `json:"height" yaml:"height"`
	FillTime    float64   `json:"fill_seconds" yaml:"fill_seconds"`
	SearchTimes []float64 `json:"search_seconds" yaml:"search_seconds"`
	Found       int       `json:"found" yaml:"found"`
	Deleted     int       `json:"deleted" yaml:"deleted"`
	Released    int       `json:"released" yaml:"released"`
	Checked     bool      `json:"checked" yaml:"checked"`
}

// TotalSearchTime - sum of all search times in seconds
func (result *Result) TotalSearchTime() float64 {
	total := 0.0
	for _, t := range result.SearchTimes {
		total += t
	}
	return total
}

// AverageSearchTime - mean search time in seconds, zero if there
// were no searches
func (result *Result) AverageSearchTime() float64 {
	if 0 == len(result.SearchTimes) {
		return 0
	}
	return result.TotalSearchTime() / float64(len(result.SearchTimes))
}

// New - create a runner for a configuration
func New(conf *Configuration, log *logger.L) (*Runner, error) {
	if nil == log {
		return nil, fault.ErrNotInitialised
	}
	if err := conf.Validate(); nil != err {
		return nil, err
	}
	r := &Runner{
		conf: *conf,
		log:  log,
	}
	r.conf.Engines = append([]string(nil), conf.Engines...)
	return r, nil
}

// Operations - number of tree operations performed by the current
// run, each released node counts as one, safe to call from another
// goroutine while Run is active
func (r *Runner) Operations() uint64 {
	return r.operations.Uint64()
}

// Run - run the benchmark once for each configured engine, all
// engines see the same keys and probes
func (r *Runner) Run() ([]Result, error) {

	if previous := r.operations.Reset(); 0 != previous {
		r.log.Debugf("previous run operations: %d", previous)
	}

	seed := r.conf.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	r.log.Infof("seed: %d  nodes: %d  searches: %d  deletes: %d", seed, r.conf.Nodes, r.conf.Searches, r.conf.Deletes)

	keys, probes := Generate(seed, r.conf.Nodes, r.conf.Searches)

	results := make([]Result, 0, len(r.conf.Engines))
	for _, name := range r.conf.Engines {
		engine, err := NewEngine(name, r.conf.NodeLimit)
		if nil != err {
			return nil, err
		}

		result, err := r.Measure(engine, keys, probes)
		if nil != err {
			r.log.Errorf("engine: %s  error: %s", name, err)
			return nil, err
		}
		result.Seed = seed
		results = append(results, result)
	}
	return results, nil
}

// Generate - n keys for filling and a number of search probes, all
// drawn from [0, n] using a private source so runs with the same
// seed are identical
func Generate(seed int64, n int, searches int) ([]int, []int) {
	rng := rand.New(rand.NewSource(seed))

	keys := make([]int, n)
	for i := range keys {
		keys[i] = rng.Intn(n + 1)
	}
	probes := make([]int, searches)
	for i := range probes {
		probes[i] = rng.Intn(n + 1)
	}
	return keys, probes
}

// Measure - fill an engine with keys, time a search for each probe,
// delete some probes and release the tree
func (r *Runner) Measure(engine Engine, keys []int, probes []int) (Result, error) {

	log := r.log
	result := Result{
		Engine:      engine.Name(),
		Nodes:       len(keys),
		SearchTimes: make([]float64, 0, len(probes)),
	}

	start := time.Now()
fill_loop:
	for _, key := range keys {
		r.operations.Increment()
		added, err := engine.Insert(key)
		if fault.IsErrLimit(err) {
			result.Rejected += 1
			continue fill_loop
		}
		if nil != err {
			return result, err
		}
		if added {
			result.Inserted += 1
		}
	}
	result.FillTime = time.Since(start).Seconds()
	result.Height = engine.Height()

	log.Infof("%s: inserted: %d  rejected: %d  height: %d", result.Engine, result.Inserted, result.Rejected, result.Height)
	if result.Rejected > 0 {
		log.Warnf("%s: node limit refused: %d keys", result.Engine, result.Rejected)
	}

	if r.conf.Check {
		if err := engine.Check(); nil != err {
			return result, err
		}
	}

	for _, key := range probes {
		r.operations.Increment()
		start := time.Now()
		found := engine.Search(key)
		elapsed := time.Since(start).Seconds()

		result.SearchTimes = append(result.SearchTimes, elapsed)
		if found {
			result.Found += 1
		}
		log.Debugf("%s: search: %d  found: %v  time: %f", result.Engine, key, found, elapsed)
	}

	deletes := r.conf.Deletes
	if deletes > len(probes) {
		deletes = len(probes)
	}
	for _, key := range probes[:deletes] {
		r.operations.Increment()
		if engine.Delete(key) {
			result.Deleted += 1
		}
	}

	if r.conf.Check {
		if err := engine.Check(); nil != err {
			return result, err
		}
		result.Checked = true
	}

	count := engine.Count()
	result.Released = engine.Free()
	r.operations.Add(uint64(result.Released))
	if result.Released != count {
		log.Criticalf("%s: released: %d  expected: %d", result.Engine, result.Released, count)
		return result, fault.ErrUnreleasedNodes
	}

	return result, nil
}
