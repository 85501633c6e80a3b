// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"gitlab.com/accumulatenetwork/runtime/pkg/errors"
	"gitlab.com/accumulatenetwork/runtime/pkg/events"
	"gitlab.com/accumulatenetwork/runtime/pkg/runtime"
)

var (
	failureColor = color.New(color.FgRed)
	headerColor  = color.New(color.Bold)
)

func printFailure(w io.Writer, e events.DidFailExtrinsic) {
	failureColor.Fprintf(w, "Block %d extrinsic %d (%s %s.%s) failed: %v [%v]\n",
		e.BlockNumber, e.Index, e.Caller, e.Pallet, e.Call, e.Error, errors.Code(e.Error))
}

func printSummary(w io.Writer, rec *events.Recorder) {
	var extrinsics int
	for _, e := range rec.Executed() {
		extrinsics += e.Extrinsics
	}
	fmt.Fprintf(w, "\nExecuted %d blocks with %d extrinsics, %d failed\n", len(rec.Executed()), extrinsics, len(rec.Failed()))
}

func printState(w io.Writer, s *runtime.State) {
	headerColor.Fprintf(w, "Block number %d\n", s.BlockNumber)

	tw := tabwriter.NewWriter(w, 2, 4, 1, ' ', 0)
	defer tw.Flush()

	if len(s.Balances) > 0 {
		fmt.Fprintln(tw, "\nAccount\tBalance\tNonce")
		for _, b := range s.Balances {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", b.Account, humanize.BigComma(b.Balance.ToBig()), nonceOf(s, b.Account))
		}
	}

	// Accounts that have sent extrinsics without ever holding a balance
	var others bool
	for _, n := range s.Nonces {
		if hasBalance(s, n.Account) {
			continue
		}
		if !others {
			fmt.Fprintln(tw, "\nAccount\t\tNonce")
			others = true
		}
		fmt.Fprintf(tw, "%s\t\t%d\n", n.Account, n.Nonce)
	}

	if len(s.Claims) > 0 {
		fmt.Fprintln(tw, "\nClaim\tOwner\t")
		for _, c := range s.Claims {
			fmt.Fprintf(tw, "%q\t%s\t\n", c.Content, c.Owner)
		}
	}
}

func nonceOf(s *runtime.State, id runtime.AccountID) runtime.Nonce {
	for _, n := range s.Nonces {
		if n.Account == id {
			return n.Nonce
		}
	}
	return 0
}

func hasBalance(s *runtime.State, id runtime.AccountID) bool {
	for _, b := range s.Balances {
		if b.Account == id {
			return true
		}
	}
	return false
}
