// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package balances_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/runtime/pkg/errors"
	"gitlab.com/accumulatenetwork/runtime/pkg/pallet/balances"
)

func maxBalance() *uint256.Int {
	return new(uint256.Int).SetAllOne()
}

func TestInitBalances(t *testing.T) {
	b := balances.New[string]()

	require.True(t, b.Balance("alice").IsZero())
	b.SetBalance("alice", uint256.NewInt(100))
	require.Equal(t, uint64(100), b.Balance("alice").Uint64())
	require.True(t, b.Balance("bob").IsZero())
}

func TestSetBalanceNil(t *testing.T) {
	b := balances.New[string]()
	b.SetBalance("alice", uint256.NewInt(5))
	b.SetBalance("alice", nil)
	require.True(t, b.Balance("alice").IsZero())
}

func TestBalanceReturnsCopy(t *testing.T) {
	b := balances.New[string]()
	b.SetBalance("alice", uint256.NewInt(10))
	v := b.Balance("alice")
	v.SetUint64(99)
	require.Equal(t, uint64(10), b.Balance("alice").Uint64())
}

func TestTransferBalance(t *testing.T) {
	b := balances.New[string]()

	err := b.Transfer("alice", "bob", uint256.NewInt(51))
	require.ErrorIs(t, err, errors.InsufficientFunds)

	b.SetBalance("alice", uint256.NewInt(100))
	require.NoError(t, b.Transfer("alice", "bob", uint256.NewInt(51)))
	require.Equal(t, uint64(49), b.Balance("alice").Uint64())
	require.Equal(t, uint64(51), b.Balance("bob").Uint64())

	err = b.Transfer("alice", "bob", uint256.NewInt(51))
	require.ErrorIs(t, err, errors.InsufficientFunds)
	require.Equal(t, uint64(49), b.Balance("alice").Uint64())
	require.Equal(t, uint64(51), b.Balance("bob").Uint64())
}

func TestTransferOverflow(t *testing.T) {
	b := balances.New[string]()
	b.SetBalance("alice", uint256.NewInt(10))
	b.SetBalance("bob", maxBalance())

	err := b.Transfer("alice", "bob", uint256.NewInt(1))
	require.ErrorIs(t, err, errors.Overflow)
	require.Equal(t, uint64(10), b.Balance("alice").Uint64())
	require.Equal(t, maxBalance(), b.Balance("bob"))
}

func TestTransferConservesBalance(t *testing.T) {
	cases := []struct {
		Name   string
		Alice  uint64
		Bob    uint64
		Amount uint64
	}{
		{"Zero", 100, 0, 0},
		{"Partial", 100, 7, 30},
		{"Everything", 100, 7, 100},
		{"EmptyRecipient", 1, 0, 1},
	}
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			b := balances.New[string]()
			b.SetBalance("alice", uint256.NewInt(c.Alice))
			b.SetBalance("bob", uint256.NewInt(c.Bob))

			require.NoError(t, b.Transfer("alice", "bob", uint256.NewInt(c.Amount)))

			after := new(uint256.Int).Add(b.Balance("alice"), b.Balance("bob"))
			require.Equal(t, c.Alice+c.Bob, after.Uint64())
			require.Equal(t, c.Alice-c.Amount, b.Balance("alice").Uint64())
		})
	}
}

func TestSelfTransfer(t *testing.T) {
	b := balances.New[string]()
	b.SetBalance("alice", uint256.NewInt(100))

	require.NoError(t, b.Transfer("alice", "alice", uint256.NewInt(60)))
	require.Equal(t, uint64(100), b.Balance("alice").Uint64())

	err := b.Transfer("alice", "alice", uint256.NewInt(101))
	require.ErrorIs(t, err, errors.InsufficientFunds)
	require.Equal(t, uint64(100), b.Balance("alice").Uint64())
}

func TestTotalIssuance(t *testing.T) {
	b := balances.New[string]()
	b.SetBalance("alice", uint256.NewInt(100))
	b.SetBalance("bob", uint256.NewInt(5))
	require.NoError(t, b.Transfer("alice", "charlie", uint256.NewInt(20)))

	total, err := b.TotalIssuance()
	require.NoError(t, err)
	require.Equal(t, uint64(105), total.Uint64())
	require.Equal(t, []string{"alice", "bob", "charlie"}, b.Accounts())

	b.SetBalance("dave", maxBalance())
	_, err = b.TotalIssuance()
	require.ErrorIs(t, err, errors.Overflow)
}

func TestDispatchTransfer(t *testing.T) {
	b := balances.New[string]()
	b.SetBalance("alice", uint256.NewInt(100))

	require.NoError(t, b.Dispatch("alice", balances.Transfer[string]{To: "bob", Amount: *uint256.NewInt(30)}))
	require.Equal(t, uint64(70), b.Balance("alice").Uint64())
	require.Equal(t, uint64(30), b.Balance("bob").Uint64())

	err := b.Dispatch("alice", balances.Transfer[string]{To: "bob", Amount: *uint256.NewInt(71)})
	require.ErrorIs(t, err, errors.InsufficientFunds)

	// A transfer addressed with a different account type is not a call for
	// this pallet
	err = b.Dispatch("alice", balances.Transfer[int]{To: 1, Amount: *uint256.NewInt(1)})
	require.ErrorIs(t, err, errors.BadRequest)
}

func TestDispatchNilTransfer(t *testing.T) {
	b := balances.New[string]()
	b.SetBalance("alice", uint256.NewInt(100))

	var call *balances.Transfer[string]
	require.NotPanics(t, func() {
		require.ErrorIs(t, b.Dispatch("alice", call), errors.BadRequest)
	})
	require.Equal(t, uint64(100), b.Balance("alice").Uint64())
}

func TestCallName(t *testing.T) {
	b := balances.New[string]()
	require.Equal(t, "transfer", b.CallName(balances.Transfer[string]{}))
	require.Equal(t, "transfer", b.CallName((*balances.Transfer[string])(nil)))
	require.Equal(t, "unknown", b.CallName(balances.Transfer[int]{}))
	require.Equal(t, "unknown", b.CallName(nil))
}

func TestEveryCallIsHandled(t *testing.T) {
	calls := []balances.Call{
		balances.Transfer[string]{To: "bob", Amount: *uint256.NewInt(1)},
		&balances.Transfer[string]{To: "bob", Amount: *uint256.NewInt(1)},
	}
	b := balances.New[string]()
	b.SetBalance("alice", uint256.NewInt(10))
	for _, call := range calls {
		require.NoErrorf(t, b.Dispatch("alice", call), "%T", call)
		require.NotEqual(t, "unknown", b.CallName(call))
	}
}
