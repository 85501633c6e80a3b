// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"io"

	"github.com/holiman/uint256"
	"gitlab.com/accumulatenetwork/runtime/pkg/errors"
	"gitlab.com/accumulatenetwork/runtime/pkg/runtime"
	"gopkg.in/yaml.v3"
)

// blockFile is the YAML representation of a sequence of blocks:
//
//	- number: 1
//	  extrinsics:
//	    - caller: alice
//	      transfer: { to: bob, amount: "30" }
//	    - caller: bob
//	      create_claim: { claim: "hello" }
type blockFile []blockEntry

type blockEntry struct {
	Number     runtime.BlockNumber `yaml:"number"`
	Extrinsics []extrinsicEntry    `yaml:"extrinsics"`
}

type extrinsicEntry struct {
	Caller      runtime.AccountID `yaml:"caller"`
	Transfer    *transferEntry    `yaml:"transfer"`
	CreateClaim *claimEntry       `yaml:"create_claim"`
	RevokeClaim *claimEntry       `yaml:"revoke_claim"`
}

type transferEntry struct {
	To     runtime.AccountID `yaml:"to"`
	Amount string            `yaml:"amount"`
}

type claimEntry struct {
	Claim runtime.Content `yaml:"claim"`
}

// decodeBlocks reads blocks from YAML. Unknown fields are rejected.
func decodeBlocks(rd io.Reader) ([]runtime.Block, error) {
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)

	var file blockFile
	err := dec.Decode(&file)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		return nil, nil
	default:
		return nil, errors.EncodingError.WithFormat("decode blocks: %w", err)
	}

	blocks := make([]runtime.Block, 0, len(file))
	for _, entry := range file {
		block := runtime.Block{Header: runtime.Header{BlockNumber: entry.Number}}
		for i, ext := range entry.Extrinsics {
			call, err := ext.call()
			if err != nil {
				return nil, errors.EncodingError.WithFormat("block %d extrinsic %d: %w", entry.Number, i, err)
			}
			block.Extrinsics = append(block.Extrinsics, runtime.Extrinsic{Caller: ext.Caller, Call: call})
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func (e *extrinsicEntry) call() (runtime.RuntimeCall, error) {
	var calls []runtime.RuntimeCall
	if e.Transfer != nil {
		amount, err := uint256.FromDecimal(e.Transfer.Amount)
		if err != nil {
			return nil, errors.EncodingError.WithFormat("invalid amount %q: %w", e.Transfer.Amount, err)
		}
		calls = append(calls, runtime.TransferBig(e.Transfer.To, amount))
	}
	if e.CreateClaim != nil {
		calls = append(calls, runtime.CreateClaim(e.CreateClaim.Claim))
	}
	if e.RevokeClaim != nil {
		calls = append(calls, runtime.RevokeClaim(e.RevokeClaim.Claim))
	}

	switch len(calls) {
	case 1:
		return calls[0], nil
	case 0:
		return nil, errors.EncodingError.With("missing call")
	default:
		return nil, errors.EncodingError.WithFormat("want one call, got %d", len(calls))
	}
}
