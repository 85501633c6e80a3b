// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package runtime

import (
	"gitlab.com/accumulatenetwork/runtime/pkg/pallet/balances"
	"gitlab.com/accumulatenetwork/runtime/pkg/support"
)

// The concrete types every pallet of the runtime is configured with.
type (
	AccountID   = string
	Balance     = balances.Balance
	BlockNumber = uint32
	Nonce       = uint32
	Content     = string

	Header    = support.Header[BlockNumber]
	Extrinsic = support.Extrinsic[AccountID, RuntimeCall]
	Block     = support.Block[Header, Extrinsic]
)
