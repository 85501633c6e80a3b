// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package runtime

import (
	"github.com/holiman/uint256"
	"gitlab.com/accumulatenetwork/runtime/pkg/pallet/balances"
	"gitlab.com/accumulatenetwork/runtime/pkg/pallet/poe"
)

// RuntimeCall is a call to one of the runtime's pallets. The set of variants
// is closed: adding a pallet means adding a variant here and a case to
// [Runtime.Dispatch].
//
//sumtype:decl
type RuntimeCall interface {
	// Pallet returns the name of the pallet the call is routed to.
	Pallet() string
	isRuntimeCall()
}

// BalancesCall is a call to the balances pallet.
type BalancesCall struct {
	Call balances.Call
}

// ProofOfExistenceCall is a call to the proof of existence pallet.
type ProofOfExistenceCall struct {
	Call poe.Call
}

func (BalancesCall) isRuntimeCall()         {}
func (ProofOfExistenceCall) isRuntimeCall() {}

func (BalancesCall) Pallet() string         { return "balances" }
func (ProofOfExistenceCall) Pallet() string { return "proof_of_existence" }

// Transfer returns a call transferring amount to the account.
func Transfer(to AccountID, amount uint64) RuntimeCall {
	return TransferBig(to, uint256.NewInt(amount))
}

// TransferBig is [Transfer] with a 256-bit amount.
func TransferBig(to AccountID, amount *Balance) RuntimeCall {
	call := balances.Transfer[AccountID]{To: to}
	if amount != nil {
		call.Amount = *amount
	}
	return BalancesCall{Call: call}
}

// CreateClaim returns a call claiming the content.
func CreateClaim(claim Content) RuntimeCall {
	return ProofOfExistenceCall{Call: poe.CreateClaim[Content]{Claim: claim}}
}

// RevokeClaim returns a call revoking a claim on the content.
func RevokeClaim(claim Content) RuntimeCall {
	return ProofOfExistenceCall{Call: poe.RevokeClaim[Content]{Claim: claim}}
}

// callName returns the pallet and call names of the call, for logging.
func (r *Runtime) callName(call RuntimeCall) (pallet, name string) {
	switch call := call.(type) {
	case BalancesCall:
		return call.Pallet(), r.balances.CallName(call.Call)
	case ProofOfExistenceCall:
		return call.Pallet(), r.proofOfExistence.CallName(call.Call)
	default:
		return "unknown", "unknown"
	}
}
