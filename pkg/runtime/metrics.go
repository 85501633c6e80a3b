// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package runtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gitlab.com/accumulatenetwork/runtime/pkg/errors"
)

// Metrics are the Prometheus metrics of a runtime. A nil *Metrics records
// nothing.
type Metrics struct {
	blocksExecuted prometheus.Counter
	blocksRejected prometheus.Counter
	extrinsics     *prometheus.CounterVec
	blockNumber    prometheus.Gauge
}

// NewMetrics creates the runtime metrics and registers them with reg. If reg
// is nil the metrics are created but not registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		blocksExecuted: f.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "blocks_executed_total",
			Help:      "Number of blocks executed",
		}),
		blocksRejected: f.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "blocks_rejected_total",
			Help:      "Number of blocks rejected before execution",
		}),
		extrinsics: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "extrinsics_total",
			Help:      "Number of extrinsics dispatched, by call and result",
		}, []string{"pallet", "call", "result"}),
		blockNumber: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "runtime",
			Name:      "block_number",
			Help:      "Number of the last executed block",
		}),
	}
}

func (m *Metrics) didExecuteBlock(number BlockNumber) {
	if m == nil {
		return
	}
	m.blocksExecuted.Inc()
	m.blockNumber.Set(float64(number))
}

func (m *Metrics) didRejectBlock() {
	if m == nil {
		return
	}
	m.blocksRejected.Inc()
}

func (m *Metrics) didDispatch(pallet, call string, err error) {
	if m == nil {
		return
	}
	result := errors.OK.String()
	if err != nil {
		result = errors.Code(err).String()
	}
	m.extrinsics.WithLabelValues(pallet, call, result).Inc()
}
