package utils

import (
	"context"
	"testing"

	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/metrics"
	"github.com/iov-one/voting/votingtest"
	"github.com/iov-one/voting/votingtest/assert"
	"github.com/prometheus/client_golang/prometheus"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	d := NewMetrics(metrics.Prom(reg))

	ctx := context.Background()
	tx := voting.NewTx(votingtest.NewAddress(), &votingtest.Msg{RoutePath: "ballot/vote"})

	_, err := d.Deliver(ctx, nil, tx, &votingtest.Handler{})
	assert.Nil(t, err)
	_, err = d.Deliver(ctx, nil, tx, &votingtest.Handler{DeliverErr: errors.ErrDuplicateVote})
	assert.IsErr(t, errors.ErrDuplicateVote, err)
	// Checks are not counted.
	_, err = d.Check(ctx, nil, tx, &votingtest.Handler{})
	assert.Nil(t, err)

	families, err := reg.Gather()
	assert.Nil(t, err)
	var total float64
	for _, f := range families {
		if f.GetName() != "voting_ledger_operations_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 2.0, total)
}
