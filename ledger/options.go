package ledger

import (
	"github.com/iov-one/voting/metrics"
	"github.com/tendermint/tendermint/libs/log"
)

// Option configures a ledger.
type Option func(*config)

type config struct {
	logger  log.Logger
	metrics *metrics.Metrics
}

func defaultConfig() config {
	return config{
		logger:  log.NewNopLogger(),
		metrics: metrics.Nop(),
	}
}

// WithLogger sets the logger used for every operation.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics sets the instruments updated by the ledger.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}
