// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package poe is the proof of existence pallet. Accounts claim content, and
// each piece of content has at most one owner at a time. The content can be
// the data itself or, better, its hash.
package poe

import (
	"gitlab.com/accumulatenetwork/runtime/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Pallet is the proof of existence pallet.
type Pallet[A, C constraints.Ordered] struct {
	claims map[C]A
}

// New returns a pallet with no claims.
func New[A, C constraints.Ordered]() *Pallet[A, C] {
	return &Pallet[A, C]{claims: map[C]A{}}
}

// GetClaim returns the owner of the content, if it has been claimed.
func (p *Pallet[A, C]) GetClaim(claim C) (A, bool) {
	owner, ok := p.claims[claim]
	return owner, ok
}

// CreateClaim records the caller as the owner of the content. It fails if
// someone already owns it.
func (p *Pallet[A, C]) CreateClaim(caller A, claim C) error {
	if owner, ok := p.claims[claim]; ok {
		return errors.AlreadyClaimed.WithFormat("%v is already claimed by %v", claim, owner)
	}
	p.claims[claim] = caller
	return nil
}

// RevokeClaim removes the claim on the content. Only the owner can revoke it.
func (p *Pallet[A, C]) RevokeClaim(caller A, claim C) error {
	owner, ok := p.claims[claim]
	if !ok {
		return errors.NotFound.WithFormat("%v has not been claimed", claim)
	}
	if owner != caller {
		return errors.NotOwner.WithFormat("%v is not the owner of %v", caller, claim)
	}
	delete(p.claims, claim)
	return nil
}

// Claims returns every claimed content, sorted.
func (p *Pallet[A, C]) Claims() []C {
	keys := maps.Keys(p.claims)
	slices.Sort(keys)
	return keys
}
