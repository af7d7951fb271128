package utils

import (
	"time"

	"github.com/iov-one/voting"
	"github.com/iov-one/voting/metrics"
)

// Metrics is a decorator that counts delivered operations by path and
// result. Checks are not counted.
type Metrics struct {
	m *metrics.Metrics
}

var _ voting.Decorator = Metrics{}

// NewMetrics creates a Metrics decorator reporting to given instruments.
func NewMetrics(m *metrics.Metrics) Metrics {
	return Metrics{m: m}
}

// Check passes through.
func (d Metrics) Check(ctx voting.Context, store voting.KVStore, tx voting.Tx, next voting.Checker) (*voting.CheckResult, error) {
	return next.Check(ctx, store, tx)
}

// Deliver records the result and the processing time.
func (d Metrics) Deliver(ctx voting.Context, store voting.KVStore, tx voting.Tx, next voting.Deliverer) (*voting.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	d.m.Operation(voting.GetPath(tx), err, time.Since(start).Seconds())
	return res, err
}
