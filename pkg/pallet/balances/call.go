// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package balances

import (
	"gitlab.com/accumulatenetwork/runtime/pkg/errors"
	"gitlab.com/accumulatenetwork/runtime/pkg/support"
)

// Call is a call to the balances pallet.
//
//sumtype:decl
type Call interface {
	isCall()
}

// Transfer transfers Amount from the caller to To.
type Transfer[A any] struct {
	To     A
	Amount Balance
}

func (Transfer[A]) isCall() {}

var _ support.Dispatch[string, Call] = (*Pallet[string])(nil)

// Dispatch executes the call on behalf of the caller.
func (p *Pallet[A]) Dispatch(caller A, call Call) error {
	switch call := call.(type) {
	case Transfer[A]:
		return p.Transfer(caller, call.To, &call.Amount)
	case *Transfer[A]:
		if call == nil {
			return errors.BadRequest.With("nil transfer")
		}
		return p.Transfer(caller, call.To, &call.Amount)
	default:
		return errors.BadRequest.WithFormat("%T is not a balances call for this pallet", call)
	}
}

// CallName returns the name of the call, or "unknown" if the call does not
// belong to this pallet. It does not dereference the call.
func (p *Pallet[A]) CallName(call Call) string {
	switch call.(type) {
	case Transfer[A], *Transfer[A]:
		return "transfer"
	default:
		return "unknown"
	}
}
