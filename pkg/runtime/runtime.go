// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package runtime composes the system, balances, and proof of existence
// pallets and executes blocks against them.
//
// A Runtime is not safe for concurrent use. Hosts that share one between
// goroutines must serialize calls to [Runtime.ExecuteBlock].
//
// Nonces are bookkeeping only. An extrinsic does not carry a nonce, so the
// runtime does not reject replayed extrinsics; that is left to whoever
// assembles and signs them.
package runtime

import (
	"io"
	"log/slog"

	"gitlab.com/accumulatenetwork/runtime/pkg/errors"
	"gitlab.com/accumulatenetwork/runtime/pkg/events"
	"gitlab.com/accumulatenetwork/runtime/pkg/pallet/balances"
	"gitlab.com/accumulatenetwork/runtime/pkg/pallet/poe"
	"gitlab.com/accumulatenetwork/runtime/pkg/pallet/system"
	"gitlab.com/accumulatenetwork/runtime/pkg/support"
)

// Runtime is the state machine. It owns every pallet.
type Runtime struct {
	system           *system.Pallet[AccountID, BlockNumber, Nonce]
	balances         *balances.Pallet[AccountID]
	proofOfExistence *poe.Pallet[AccountID, Content]

	logger  *slog.Logger
	bus     *events.Bus
	metrics *Metrics
}

var _ support.Dispatch[AccountID, RuntimeCall] = (*Runtime)(nil)

// Option configures a [Runtime].
type Option func(*Runtime)

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithEventBus sets the bus that block and extrinsic events are published to.
func WithEventBus(bus *events.Bus) Option {
	return func(r *Runtime) { r.bus = bus }
}

// WithMetrics sets the metrics the runtime records to.
func WithMetrics(m *Metrics) Option {
	return func(r *Runtime) { r.metrics = m }
}

// New returns a runtime at block zero with empty pallets.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		system:           system.New[AccountID, BlockNumber, Nonce](),
		balances:         balances.New[AccountID](),
		proofOfExistence: poe.New[AccountID, Content](),
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("module", "runtime")
	return r
}

// System returns the system pallet. Writing to it directly bypasses dispatch
// and must only be done before the first block is executed.
func (r *Runtime) System() *system.Pallet[AccountID, BlockNumber, Nonce] { return r.system }

// Balances returns the balances pallet. Writing to it directly bypasses
// dispatch and must only be done before the first block is executed, for
// example to seed genesis balances.
func (r *Runtime) Balances() *balances.Pallet[AccountID] { return r.balances }

// ProofOfExistence returns the proof of existence pallet. Writing to it
// directly bypasses dispatch and must only be done before the first block is
// executed.
func (r *Runtime) ProofOfExistence() *poe.Pallet[AccountID, Content] { return r.proofOfExistence }

// ExecuteBlock executes the block. If the block does not directly follow the
// last executed block it is rejected with [errors.InvalidBlock] and nothing
// changes. Otherwise every extrinsic is dispatched in order: the caller's
// nonce is incremented whether or not the call succeeds, and a failed call is
// logged and published without stopping the block.
func (r *Runtime) ExecuteBlock(block Block) error {
	current := r.system.BlockNumber()
	expected := current + 1
	if expected < current || block.Header.BlockNumber != expected {
		err := errors.InvalidBlock.WithFormat("block number does not match what is expected: want %d, got %d", expected, block.Header.BlockNumber)
		r.logger.Error("Rejected block", "expected", expected, "actual", block.Header.BlockNumber, "error", err)
		r.metrics.didRejectBlock()
		r.bus.Publish(events.DidRejectBlock{
			Expected: uint64(expected),
			Actual:   uint64(block.Header.BlockNumber),
			Error:    err,
		})
		return err
	}

	r.system.IncBlockNumber()
	number := r.system.BlockNumber()
	r.logger.Debug("Begin block", "height", number, "extrinsics", len(block.Extrinsics))

	var failed int
	for i, ext := range block.Extrinsics {
		r.system.IncNonce(ext.Caller)

		err := r.Dispatch(ext.Caller, ext.Call)
		pallet, call := r.callName(ext.Call)
		r.metrics.didDispatch(pallet, call, err)
		if err == nil {
			r.logger.Debug("Dispatched extrinsic", "height", number, "index", i, "caller", ext.Caller, "pallet", pallet, "call", call)
			continue
		}

		failed++
		r.logger.Error("Extrinsic failed", "height", number, "index", i, "caller", ext.Caller, "pallet", pallet, "call", call, "code", errors.Code(err), "error", err)
		r.bus.Publish(events.DidFailExtrinsic{
			BlockNumber: uint64(number),
			Index:       i,
			Caller:      ext.Caller,
			Pallet:      pallet,
			Call:        call,
			Error:       err,
		})
	}

	r.logger.Info("Executed block", "height", number, "extrinsics", len(block.Extrinsics), "failed", failed)
	r.metrics.didExecuteBlock(number)
	r.bus.Publish(events.DidExecuteBlock{
		BlockNumber: uint64(number),
		Extrinsics:  len(block.Extrinsics),
		Failed:      failed,
	})
	return nil
}

// Dispatch routes the call to the pallet that implements it. It does not
// touch the caller's nonce.
func (r *Runtime) Dispatch(caller AccountID, call RuntimeCall) error {
	switch call := call.(type) {
	case BalancesCall:
		return r.balances.Dispatch(caller, call.Call)
	case ProofOfExistenceCall:
		return r.proofOfExistence.Dispatch(caller, call.Call)
	default:
		return errors.BadRequest.WithFormat("%T is not a runtime call", call)
	}
}
