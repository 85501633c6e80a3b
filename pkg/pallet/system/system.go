// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package system tracks the current block number and the nonce of each
// account.
package system

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Pallet is the system pallet. A is the account type, B the block number type,
// and N the nonce type.
type Pallet[A constraints.Ordered, B, N constraints.Unsigned] struct {
	blockNumber B
	nonce       map[A]N
}

// New returns a system pallet at block zero with no nonces.
func New[A constraints.Ordered, B, N constraints.Unsigned]() *Pallet[A, B, N] {
	return &Pallet[A, B, N]{nonce: map[A]N{}}
}

// BlockNumber returns the number of the last executed block.
func (p *Pallet[A, B, N]) BlockNumber() B {
	return p.blockNumber
}

// IncBlockNumber advances the block number by one.
func (p *Pallet[A, B, N]) IncBlockNumber() {
	p.blockNumber++
}

// Nonce returns the number of extrinsics dispatched for the account.
func (p *Pallet[A, B, N]) Nonce(who A) N {
	return p.nonce[who]
}

// IncNonce advances the nonce of the account by one.
func (p *Pallet[A, B, N]) IncNonce(who A) {
	p.nonce[who] = p.nonce[who] + 1
}

// Accounts returns every account with a nonce, sorted.
func (p *Pallet[A, B, N]) Accounts() []A {
	keys := maps.Keys(p.nonce)
	slices.Sort(keys)
	return keys
}
