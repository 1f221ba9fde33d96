// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snapshot

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "snapshot"

type metrics struct {
	stateChunksProcessed  prometheus.Counter
	blockChunksProcessed  prometheus.Counter
	restorationsCompleted prometheus.Counter
	restorationFailures   prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		stateChunksProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "state_chunks_processed",
			Help:      "Number of state chunks processed by the restoration worker",
		}),
		blockChunksProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "block_chunks_processed",
			Help:      "Number of block chunks processed by the restoration worker",
		}),
		restorationsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "restorations_completed",
			Help:      "Number of restorations finalized successfully",
		}),
		restorationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "restoration_failures",
			Help:      "Number of restoration attempts that ended in failure",
		}),
	}
	if reg == nil {
		return m, nil
	}
	return m, errors.Join(
		reg.Register(m.stateChunksProcessed),
		reg.Register(m.blockChunksProcessed),
		reg.Register(m.restorationsCompleted),
		reg.Register(m.restorationFailures),
	)
}
