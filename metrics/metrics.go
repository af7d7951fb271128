// Package metrics declares the instruments updated by the ledger. The
// instruments are go-kit interfaces, backed either by prometheus collectors or
// by no-op implementations.
package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	Namespace = "voting"

	LedgerSubsystem = "ledger"
)

// Label names and values used by the operation counter.
const (
	PathLabel   = "path"
	ResultLabel = "result"

	ResultOK       = "ok"
	ResultRejected = "rejected"
)

// Metrics groups all instruments of a single ledger instance.
type Metrics struct {
	// Operations counts delivered operations by message path and result.
	Operations metrics.Counter
	// Duration observes the processing time of delivered operations in
	// seconds, by message path.
	Duration metrics.Histogram

	Phase     metrics.Gauge
	Voters    metrics.Gauge
	Proposals metrics.Gauge
	Votes     metrics.Counter
}

// Operation records the result of a single delivered operation.
func (m *Metrics) Operation(path string, err error, seconds float64) {
	result := ResultOK
	if err != nil {
		result = ResultRejected
	}
	m.Operations.With(PathLabel, path, ResultLabel, result).Add(1)
	m.Duration.With(PathLabel, path).Observe(seconds)
}

func (m *Metrics) SetPhase(phase int64) {
	m.Phase.Set(float64(phase))
}

func (m *Metrics) SetVoters(n uint64) {
	m.Voters.Set(float64(n))
}

func (m *Metrics) SetProposals(n uint64) {
	m.Proposals.Set(float64(n))
}

func (m *Metrics) AddVote() {
	m.Votes.Add(1)
}

// Nop returns instruments that discard all observations.
func Nop() *Metrics {
	return &Metrics{
		Operations: discard.NewCounter(),
		Duration:   discard.NewHistogram(),
		Phase:      discard.NewGauge(),
		Voters:     discard.NewGauge(),
		Proposals:  discard.NewGauge(),
		Votes:      discard.NewCounter(),
	}
}

// Prom returns prometheus backed instruments, registered with given
// registerer. Each ledger instance should use its own registry, registering
// the same collectors twice panics.
func Prom(reg stdprometheus.Registerer) *Metrics {
	operations := stdprometheus.NewCounterVec(stdprometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: LedgerSubsystem,
		Name:      "operations_total",
		Help:      "Number of delivered operations.",
	}, []string{PathLabel, ResultLabel})
	duration := stdprometheus.NewHistogramVec(stdprometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: LedgerSubsystem,
		Name:      "operation_duration_seconds",
		Help:      "Processing time of delivered operations.",
		Buckets:   stdprometheus.ExponentialBuckets(0.00001, 10, 6),
	}, []string{PathLabel})
	phase := stdprometheus.NewGaugeVec(stdprometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: LedgerSubsystem,
		Name:      "phase",
		Help:      "Current workflow phase.",
	}, []string{})
	voters := stdprometheus.NewGaugeVec(stdprometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: LedgerSubsystem,
		Name:      "voters",
		Help:      "Number of registered voters.",
	}, []string{})
	proposals := stdprometheus.NewGaugeVec(stdprometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: LedgerSubsystem,
		Name:      "proposals",
		Help:      "Number of proposals, including the blank one.",
	}, []string{})
	votes := stdprometheus.NewCounterVec(stdprometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: LedgerSubsystem,
		Name:      "votes_total",
		Help:      "Number of votes cast.",
	}, []string{})

	reg.MustRegister(operations, duration, phase, voters, proposals, votes)

	return &Metrics{
		Operations: prometheus.NewCounter(operations),
		Duration:   prometheus.NewHistogram(duration),
		Phase:      prometheus.NewGauge(phase),
		Voters:     prometheus.NewGauge(voters),
		Proposals:  prometheus.NewGauge(proposals),
		Votes:      prometheus.NewCounter(votes),
	}
}
