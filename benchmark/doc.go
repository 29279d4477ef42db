// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package benchmark - fill trees with pseudo-random keys and time
// searches on them
//
// every selected engine receives the same key sequence, drawn from
// [0, n] so that some keys repeat and some searches miss.  Each run
// finishes by releasing the tree and verifying the released node
// count.
package benchmark
