// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and os.getenv to extract environment supplied items.  The file must
// finish by returning a table, e.g.
//
//   local M = {}
//   M.nodes = 1000
//   M.searches = 50
//   return M
//
// which is then copied into a Go structure by matching each field's
// "gluamapper" tag against the table keys.
package configuration
