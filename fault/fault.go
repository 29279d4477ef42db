// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LimitError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrBlackHeightMismatch   = InvalidError("black height differs between paths")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrCountMismatch         = InvalidError("node count does not match tree contents")
	ErrFileAlreadyExists     = ExistsError("file already exists")
	ErrHeightMismatch        = InvalidError("stored height does not match sub-trees")
	ErrInvalidDeleteCount    = InvalidError("invalid delete count")
	ErrInvalidEngine         = InvalidError("invalid tree engine")
	ErrInvalidKeyList        = InvalidError("invalid key list")
	ErrInvalidNodeCount      = InvalidError("invalid node count")
	ErrInvalidNodeLimit      = InvalidError("invalid node limit")
	ErrInvalidOutputFormat   = InvalidError("invalid output format")
	ErrInvalidSearchCount    = InvalidError("invalid search count")
	ErrNilKey                = InvalidError("key cannot be nil")
	ErrNodeLimitReached      = LimitError("node limit reached")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrOrderViolation        = InvalidError("keys are not in strictly ascending order")
	ErrParentLinkMismatch    = InvalidError("parent link is inconsistent")
	ErrRedNodeHasRedChild    = InvalidError("red node has a red child")
	ErrRootNotBlack          = InvalidError("root is not black")
	ErrSentinelModified      = InvalidError("sentinel node was modified")
	ErrTreeUnbalanced        = InvalidError("balance factor out of range")
	ErrUnreleasedNodes       = ProcessError("nodes were not released")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LimitError) Error() string    { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLimit(e error) bool    { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
