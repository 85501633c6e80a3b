// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package events

import "sync"

func (DidExecuteBlock) isEvent()  {}
func (DidRejectBlock) isEvent()   {}
func (DidFailExtrinsic) isEvent() {}

// DidExecuteBlock is published after every extrinsic of a block has been
// processed.
type DidExecuteBlock struct {
	BlockNumber uint64
	Extrinsics  int
	Failed      int
}

// DidRejectBlock is published when a block is rejected before any of it is
// applied.
type DidRejectBlock struct {
	Expected uint64
	Actual   uint64
	Error    error
}

// DidFailExtrinsic is published when a dispatched call returns an error. The
// block continues.
type DidFailExtrinsic struct {
	BlockNumber uint64
	Index       int
	Caller      string
	Pallet      string
	Call        string
	Error       error
}

// Recorder collects the block events published on a bus.
type Recorder struct {
	mu       sync.Mutex
	executed []DidExecuteBlock
	rejected []DidRejectBlock
	failed   []DidFailExtrinsic
}

// Record subscribes a new recorder to the bus. Calling cancel stops recording.
func Record(b *Bus) (r *Recorder, cancel func()) {
	r = new(Recorder)
	cancels := []func(){
		record(b, &r.mu, &r.executed),
		record(b, &r.mu, &r.rejected),
		record(b, &r.mu, &r.failed),
	}
	return r, func() {
		for _, c := range cancels {
			c()
		}
	}
}

func record[T Event](b *Bus, mu *sync.Mutex, list *[]T) func() {
	return SubscribeSync(b, func(e T) {
		mu.Lock()
		defer mu.Unlock()
		*list = append(*list, e)
	})
}

// Executed returns the executed blocks, in order.
func (r *Recorder) Executed() []DidExecuteBlock {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]DidExecuteBlock(nil), r.executed...)
}

// Rejected returns the rejected blocks, in order.
func (r *Recorder) Rejected() []DidRejectBlock {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]DidRejectBlock(nil), r.rejected...)
}

// Failed returns the failed extrinsics, in order.
func (r *Recorder) Failed() []DidFailExtrinsic {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]DidFailExtrinsic(nil), r.failed...)
}
