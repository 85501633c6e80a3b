// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package support defines the block and extrinsic shapes shared by the
// runtime and its pallets.
package support

// Header is the header of a block.
type Header[N any] struct {
	BlockNumber N
}

// Block is a header plus an ordered list of extrinsics.
type Block[H, X any] struct {
	Header     H
	Extrinsics []X
}

// Extrinsic is a call made by an account.
type Extrinsic[A, C any] struct {
	Caller A
	Call   C
}

// Dispatch is implemented by anything that can execute a call on behalf of a
// caller. Each pallet dispatches its own closed set of calls and the runtime
// dispatches the union of them.
type Dispatch[A, C any] interface {
	Dispatch(caller A, call C) error
}
