package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/voting"
	"github.com/iov-one/voting/app"
	"github.com/iov-one/voting/ledger"
	"github.com/iov-one/voting/metrics"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/tendermint/tendermint/libs/log"
)

func cmdRun(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Read a scenario from the input and execute every step against a fresh,
in-memory ledger. Each step result is compared with the step expectation.
When all steps were executed, proposal standings are printed.
		`)
		fl.PrintDefaults()
	}
	var (
		genesisFl = fl.String("genesis", "", "Path to a genesis file. Overrides the scenario genesis.")
		logFl     = fl.String("log", "error", "Log level, one of none, error, info or debug. Logs are written to stderr.")
		dryRunFl  = fl.Bool("dry-run", false, "Check steps without committing any of them. Every step is executed against the genesis state.")
		metricsFl = fl.Bool("metrics", false, "Print collected metrics.")
	)
	fl.Parse(args)

	level, err := log.AllowLevel(*logFl)
	if err != nil {
		flagDie("invalid log level: %s", err)
	}
	logger := log.NewFilter(log.NewTMLogger(log.NewSyncWriter(os.Stderr)), level)

	sc, err := readScenario(input)
	if err != nil {
		return err
	}
	if *genesisFl != "" {
		fd, err := os.Open(*genesisFl)
		if err != nil {
			return fmt.Errorf("cannot open genesis file: %s", err)
		}
		sc.Genesis, err = app.ReadGenesis(fd)
		fd.Close()
		if err != nil {
			return err
		}
	}
	if sc.Genesis == nil {
		return fmt.Errorf("genesis is required")
	}

	reg := prometheus.NewRegistry()
	l, err := ledger.New(sc.Genesis,
		ledger.WithLogger(logger),
		ledger.WithMetrics(metrics.Prom(reg)))
	if err != nil {
		return fmt.Errorf("cannot create ledger: %s", err)
	}

	var failed int
	for i, st := range sc.Steps {
		msg, err := st.Msg()
		if err != nil {
			return fmt.Errorf("step %d: %s", i+1, err)
		}
		tx := voting.NewTx(st.Caller, msg)
		if *dryRunFl {
			_, err = l.Check(tx)
		} else {
			_, err = l.Deliver(tx)
		}
		status := "ok"
		if err != nil {
			status = "rejected: " + err.Error()
		}
		if verr := st.Verify(err); verr != nil {
			failed++
			status = "FAIL: " + verr.Error()
		}
		fmt.Fprintf(output, "%3d %-28s %s\n", i+1, st.Action, status)
	}

	if err := writeStandings(output, l); err != nil {
		return err
	}
	if *metricsFl {
		if err := writeMetrics(output, reg); err != nil {
			return err
		}
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d steps did not meet the expectation", failed, len(sc.Steps))
	}
	return nil
}

func writeStandings(w io.Writer, l *ledger.Ledger) error {
	standings, err := l.Standings()
	if err != nil {
		return fmt.Errorf("cannot read standings: %s", err)
	}
	phase, err := l.CurrentPhase()
	if err != nil {
		return fmt.Errorf("cannot read phase: %s", err)
	}
	winner, err := l.WinningProposalID()
	if err != nil {
		return fmt.Errorf("cannot read winner: %s", err)
	}

	fmt.Fprintf(w, "\nphase: %s\n", phase)
	var total uint64
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Description", "Votes"})
	for _, s := range standings {
		total += s.VoteCount
		table.Append([]string{
			fmt.Sprint(s.ID),
			s.Description,
			fmt.Sprint(s.VoteCount),
		})
	}
	table.SetFooter([]string{"", "Total", fmt.Sprint(total)})
	table.Render()
	if phase.Terminal() {
		fmt.Fprintf(w, "winner: %d\n", winner)
	}
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("cannot gather metrics: %s", err)
	}
	var rows [][]string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			rows = append(rows, []string{mf.GetName(), labels(m), metricValue(mf.GetType(), m)})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i][0] != rows[j][0] {
			return rows[i][0] < rows[j][0]
		}
		return rows[i][1] < rows[j][1]
	})

	fmt.Fprintln(w)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Labels", "Value"})
	table.AppendBulk(rows)
	table.Render()
	return nil
}

func labels(m *dto.Metric) string {
	pairs := make([]string, 0, len(m.GetLabel()))
	for _, l := range m.GetLabel() {
		pairs = append(pairs, l.GetName()+"="+l.GetValue())
	}
	return strings.Join(pairs, ",")
}

func metricValue(kind dto.MetricType, m *dto.Metric) string {
	switch kind {
	case dto.MetricType_COUNTER:
		return fmt.Sprint(m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprint(m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		return fmt.Sprintf("count=%d", m.GetHistogram().GetSampleCount())
	default:
		return "?"
	}
}
