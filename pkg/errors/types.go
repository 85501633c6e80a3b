// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import "strconv"

// Status is an error status code.
type Status uint64

const (
	// OK means the call succeeded.
	OK Status = 200

	// BadRequest means the input was malformed.
	BadRequest Status = 400

	// InsufficientFunds means the caller's balance is lower than the amount
	// being transferred.
	InsufficientFunds Status = 402

	// NotOwner means the caller does not own the claim it tried to revoke.
	NotOwner Status = 403

	// NotFound means the requested record does not exist.
	NotFound Status = 404

	// AlreadyClaimed means the content already has an owner.
	AlreadyClaimed Status = 409

	// InvalidBlock means the block header does not follow the current chain
	// head.
	InvalidBlock Status = 412

	// Overflow means an arithmetic operation exceeded the width of the value.
	Overflow Status = 422

	// InternalError means something went wrong that should never happen.
	InternalError Status = 500

	// UnknownError means the cause of the error is not known.
	UnknownError Status = 501

	// EncodingError means something could not be decoded or encoded.
	EncodingError Status = 502
)

var statusNames = map[Status]string{
	OK:                "ok",
	BadRequest:        "bad-request",
	InsufficientFunds: "insufficient-funds",
	NotOwner:          "not-owner",
	NotFound:          "not-found",
	AlreadyClaimed:    "already-claimed",
	InvalidBlock:      "invalid-block",
	Overflow:          "overflow",
	InternalError:     "internal-error",
	UnknownError:      "unknown-error",
	EncodingError:     "encoding-error",
}

// String returns the name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "status-" + strconv.FormatUint(uint64(s), 10)
}

// CallSite is a location in the source that produced an error.
type CallSite struct {
	FuncName string
	File     string
	Line     int64
}

// Error is an error with a status code, an optional cause, and the call sites
// it passed through.
type Error struct {
	Message   string
	Code      Status
	Cause     *Error
	CallStack []*CallSite
}
