// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package balances is the account ledger.
package balances

import (
	"github.com/holiman/uint256"
	"gitlab.com/accumulatenetwork/runtime/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Balance is an unsigned 256-bit amount.
type Balance = uint256.Int

// Pallet is the balances pallet. Accounts that have never been written have a
// balance of zero.
type Pallet[A constraints.Ordered] struct {
	balances map[A]Balance
}

// New returns an empty balances pallet.
func New[A constraints.Ordered]() *Pallet[A] {
	return &Pallet[A]{balances: map[A]Balance{}}
}

// SetBalance overwrites the balance of the account. A nil amount is zero.
func (p *Pallet[A]) SetBalance(who A, amount *Balance) {
	if amount == nil {
		amount = new(Balance)
	}
	p.balances[who] = *amount
}

// Balance returns a copy of the balance of the account.
func (p *Pallet[A]) Balance(who A) *Balance {
	v := p.balances[who]
	return &v
}

// Transfer moves amount from caller to to. Either both balances are updated
// or neither is.
func (p *Pallet[A]) Transfer(caller, to A, amount *Balance) error {
	if amount == nil {
		amount = new(Balance)
	}

	c := p.balances[caller]
	t := p.balances[to]

	newCaller, underflow := new(Balance).SubOverflow(&c, amount)
	if underflow {
		return errors.InsufficientFunds.WithFormat("%v has %v, cannot transfer %v", caller, c.Dec(), amount.Dec())
	}

	newTo, overflow := new(Balance).AddOverflow(&t, amount)
	if overflow {
		return errors.Overflow.WithFormat("crediting %v to %v overflows", amount.Dec(), to)
	}

	// Sending to yourself passes the same checks but changes nothing
	if caller == to {
		return nil
	}

	p.balances[caller] = *newCaller
	p.balances[to] = *newTo
	return nil
}

// TotalIssuance returns the sum of every balance.
func (p *Pallet[A]) TotalIssuance() (*Balance, error) {
	total := new(Balance)
	for who, v := range p.balances {
		v := v
		if _, overflow := total.AddOverflow(total, &v); overflow {
			return nil, errors.Overflow.WithFormat("total issuance overflows at %v", who)
		}
	}
	return total, nil
}

// Accounts returns every account with a balance entry, sorted.
func (p *Pallet[A]) Accounts() []A {
	keys := maps.Keys(p.balances)
	slices.Sort(keys)
	return keys
}
