// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package runtime

import (
	"github.com/davecgh/go-spew/spew"
)

// State is a snapshot of every pallet, with entries sorted by key.
type State struct {
	BlockNumber BlockNumber
	Balances    []AccountBalance
	Nonces      []AccountNonce
	Claims      []Claim
}

type AccountBalance struct {
	Account AccountID
	Balance *Balance
}

type AccountNonce struct {
	Account AccountID
	Nonce   Nonce
}

type Claim struct {
	Content Content
	Owner   AccountID
}

// State returns a snapshot of the runtime. The snapshot does not change when
// the runtime does.
func (r *Runtime) State() *State {
	s := new(State)
	s.BlockNumber = r.system.BlockNumber()

	for _, id := range r.balances.Accounts() {
		s.Balances = append(s.Balances, AccountBalance{id, r.balances.Balance(id)})
	}
	for _, id := range r.system.Accounts() {
		s.Nonces = append(s.Nonces, AccountNonce{id, r.system.Nonce(id)})
	}
	for _, c := range r.proofOfExistence.Claims() {
		owner, _ := r.proofOfExistence.GetClaim(c)
		s.Claims = append(s.Claims, Claim{c, owner})
	}
	return s
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// stateDump has no String method, so spew does not recurse into State.String.
type stateDump State

// String dumps the snapshot for debugging.
func (s *State) String() string {
	return dumper.Sdump((*stateDump)(s))
}
