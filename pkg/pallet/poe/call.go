// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package poe

import (
	"gitlab.com/accumulatenetwork/runtime/pkg/errors"
	"gitlab.com/accumulatenetwork/runtime/pkg/support"
)

// Call is a call to the proof of existence pallet.
//
//sumtype:decl
type Call interface {
	isCall()
}

// CreateClaim claims Claim for the caller.
type CreateClaim[C any] struct {
	Claim C
}

// RevokeClaim revokes the caller's claim on Claim.
type RevokeClaim[C any] struct {
	Claim C
}

func (CreateClaim[C]) isCall() {}
func (RevokeClaim[C]) isCall() {}

var _ support.Dispatch[string, Call] = (*Pallet[string, string])(nil)

// Dispatch executes the call on behalf of the caller.
func (p *Pallet[A, C]) Dispatch(caller A, call Call) error {
	switch call := call.(type) {
	case CreateClaim[C]:
		return p.CreateClaim(caller, call.Claim)
	case *CreateClaim[C]:
		if call == nil {
			return errors.BadRequest.With("nil create claim")
		}
		return p.CreateClaim(caller, call.Claim)
	case RevokeClaim[C]:
		return p.RevokeClaim(caller, call.Claim)
	case *RevokeClaim[C]:
		if call == nil {
			return errors.BadRequest.With("nil revoke claim")
		}
		return p.RevokeClaim(caller, call.Claim)
	default:
		return errors.BadRequest.WithFormat("%T is not a proof of existence call for this pallet", call)
	}
}

// CallName returns the name of the call, or "unknown" if the call does not
// belong to this pallet. It does not dereference the call.
func (p *Pallet[A, C]) CallName(call Call) string {
	switch call.(type) {
	case CreateClaim[C], *CreateClaim[C]:
		return "create_claim"
	case RevokeClaim[C], *RevokeClaim[C]:
		return "revoke_claim"
	default:
		return "unknown"
	}
}
