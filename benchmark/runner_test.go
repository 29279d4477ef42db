// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/benchmark"
	"github.com/bitmark-inc/bstree/benchmark/mocks"
	"github.com/bitmark-inc/bstree/fault"
)

func newTestRunner(t *testing.T, conf benchmark.Configuration) *benchmark.Runner {
	r, err := benchmark.New(&conf, logger.New(category))
	if nil != err {
		t.Fatalf("new runner error: %s", err)
	}
	return r
}

func TestNewRunner(t *testing.T) {
	conf := benchmark.DefaultConfiguration()
	_, err := benchmark.New(&conf, nil)
	assert.Equal(t, fault.ErrNotInitialised, err, "missing logger")

	conf.Nodes = -1
	_, err = benchmark.New(&conf, logger.New(category))
	assert.Equal(t, fault.ErrInvalidNodeCount, err, "invalid configuration")
}

func TestGenerate(t *testing.T) {
	const n = 100

	keys1, probes1 := benchmark.Generate(42, n, 20)
	keys2, probes2 := benchmark.Generate(42, n, 20)
	assert.Equal(t, keys1, keys2, "keys differ for the same seed")
	assert.Equal(t, probes1, probes2, "probes differ for the same seed")
	assert.Equal(t, n, len(keys1), "key count")
	assert.Equal(t, 20, len(probes1), "probe count")

	for _, k := range append(keys1, probes1...) {
		assert.True(t, k >= 0 && k <= n, "value out of range: %d", k)
	}

	keys3, _ := benchmark.Generate(43, n, 20)
	assert.NotEqual(t, keys1, keys3, "different seeds gave the same keys")
}

func TestRun(t *testing.T) {
	conf := benchmark.DefaultConfiguration()
	conf.Seed = 42
	conf.Deletes = 10
	conf.Check = true

	r := newTestRunner(t, conf)
	results, err := r.Run()
	assert.Nil(t, err, "run")
	assert.Equal(t, 2, len(results), "result count")

	avlResult := results[0]
	rbResult := results[1]
	assert.Equal(t, "avl", avlResult.Engine, "first engine")
	assert.Equal(t, "rbtree", rbResult.Engine, "second engine")

	for _, result := range results {
		assert.Equal(t, int64(42), result.Seed, "%s: seed", result.Engine)
		assert.Equal(t, 1000, result.Nodes, "%s: nodes", result.Engine)
		assert.Equal(t, 50, len(result.SearchTimes), "%s: searches", result.Engine)
		assert.True(t, result.Checked, "%s: checked", result.Engine)
		assert.Equal(t, 0, result.Rejected, "%s: rejected", result.Engine)
		assert.Equal(t, result.Inserted-result.Deleted, result.Released, "%s: released", result.Engine)
		assert.True(t, result.Inserted < 1000, "%s: keys in [0, n] must repeat", result.Engine)
	}

	// same keys so the same set is stored
	assert.Equal(t, avlResult.Inserted, rbResult.Inserted, "inserted")
	assert.Equal(t, avlResult.Found, rbResult.Found, "found")
	assert.Equal(t, avlResult.Deleted, rbResult.Deleted, "deleted")

	// each engine: 1000 inserts, 50 searches, 10 deletes and the
	// released nodes
	operations := uint64(2*(1000+50+10) + avlResult.Released + rbResult.Released)
	assert.Equal(t, operations, r.Operations(), "operations")

	// a second run starts counting from zero
	again, err := r.Run()
	assert.Nil(t, err, "second run")
	assert.Equal(t, results[0].Released, again[0].Released, "second run released")
	assert.Equal(t, operations, r.Operations(), "second run operations")
}

func TestRunLimited(t *testing.T) {
	conf := benchmark.DefaultConfiguration()
	conf.Nodes = 100
	conf.Seed = 3
	conf.NodeLimit = 10
	conf.Check = true

	results, err := newTestRunner(t, conf).Run()
	assert.Nil(t, err, "run")

	for _, result := range results {
		assert.Equal(t, 10, result.Inserted, "%s: inserted", result.Engine)
		assert.True(t, result.Rejected > 0, "%s: nothing rejected", result.Engine)
		assert.Equal(t, 10, result.Released, "%s: released", result.Engine)
	}
}

func TestMeasure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockEngine(ctl)

	conf := benchmark.DefaultConfiguration()
	conf.Check = true
	conf.Deletes = 1
	r := newTestRunner(t, conf)

	m.EXPECT().Name().Return("mock").AnyTimes()
	m.EXPECT().Insert(1).Return(true, nil).Times(1)
	m.EXPECT().Insert(2).Return(true, nil).Times(1)
	m.EXPECT().Insert(2).Return(false, nil).Times(1)
	m.EXPECT().Height().Return(2).Times(1)
	m.EXPECT().Check().Return(nil).Times(2)
	m.EXPECT().Search(2).Return(true).Times(1)
	m.EXPECT().Search(5).Return(false).Times(1)
	m.EXPECT().Delete(2).Return(true).Times(1)
	m.EXPECT().Count().Return(1).Times(1)
	m.EXPECT().Free().Return(1).Times(1)

	result, err := r.Measure(m, []int{1, 2, 2}, []int{2, 5})
	assert.Nil(t, err, "measure")
	assert.Equal(t, "mock", result.Engine, "engine")
	assert.Equal(t, 3, result.Nodes, "nodes")
	assert.Equal(t, 2, result.Inserted, "inserted")
	assert.Equal(t, 2, result.Height, "height")
	assert.Equal(t, 1, result.Found, "found")
	assert.Equal(t, 1, result.Deleted, "deleted")
	assert.Equal(t, 1, result.Released, "released")
	assert.Equal(t, 2, len(result.SearchTimes), "search times")
	assert.True(t, result.Checked, "checked")
	assert.Equal(t, uint64(7), r.Operations(), "operations")
}

func TestMeasureLimitRejects(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockEngine(ctl)

	r := newTestRunner(t, benchmark.DefaultConfiguration())

	m.EXPECT().Name().Return("mock").AnyTimes()
	m.EXPECT().Insert(1).Return(true, nil).Times(1)
	m.EXPECT().Insert(2).Return(false, fault.ErrNodeLimitReached).Times(1)
	m.EXPECT().Height().Return(1).Times(1)
	m.EXPECT().Count().Return(1).Times(1)
	m.EXPECT().Free().Return(1).Times(1)

	result, err := r.Measure(m, []int{1, 2}, []int{})
	assert.Nil(t, err, "measure")
	assert.Equal(t, 1, result.Inserted, "inserted")
	assert.Equal(t, 1, result.Rejected, "rejected")
	assert.False(t, result.Checked, "checked")
}

func TestMeasureInsertError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockEngine(ctl)

	r := newTestRunner(t, benchmark.DefaultConfiguration())

	m.EXPECT().Name().Return("mock").AnyTimes()
	m.EXPECT().Insert(1).Return(false, fault.ErrNilKey).Times(1)

	_, err := r.Measure(m, []int{1, 2}, []int{1})
	assert.Equal(t, fault.ErrNilKey, err, "insert error")
}

func TestMeasureCheckFails(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockEngine(ctl)

	conf := benchmark.DefaultConfiguration()
	conf.Check = true
	r := newTestRunner(t, conf)

	m.EXPECT().Name().Return("mock").AnyTimes()
	m.EXPECT().Insert(gomock.Any()).Return(true, nil).Times(2)
	m.EXPECT().Height().Return(2).Times(1)
	m.EXPECT().Check().Return(fault.ErrOrderViolation).Times(1)

	_, err := r.Measure(m, []int{1, 2}, []int{1})
	assert.Equal(t, fault.ErrOrderViolation, err, "check error")
}

func TestMeasureUnreleased(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockEngine(ctl)

	r := newTestRunner(t, benchmark.DefaultConfiguration())

	m.EXPECT().Name().Return("mock").AnyTimes()
	m.EXPECT().Insert(gomock.Any()).Return(true, nil).Times(3)
	m.EXPECT().Height().Return(2).Times(1)
	m.EXPECT().Search(gomock.Any()).Return(true).Times(1)
	m.EXPECT().Count().Return(3).Times(1)
	m.EXPECT().Free().Return(2).Times(1)

	_, err := r.Measure(m, []int{1, 2, 3}, []int{2})
	assert.Equal(t, fault.ErrUnreleasedNodes, err, "free mismatch")
}
