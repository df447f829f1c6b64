package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/signin/internal/store"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// OutcomeCounter counts the journaled sign-in events per outcome.
type OutcomeCounter interface {
	CountByOutcome(ctx context.Context, since time.Time) (map[store.SignInOutcome]int64, error)
}

// JournalCollector exposes the journaled sign-in outcomes over a sliding
// window. Counts are read from the journal at scrape time.
type JournalCollector struct {
	counter OutcomeCounter
	window  time.Duration
	timeout time.Duration
	desc    *prometheus.Desc
}

// Describe implements prometheus.Collector.
func (c *JournalCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *JournalCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	counts, err := c.counter.CountByOutcome(ctx, time.Now().UTC().Add(-c.window))
	if err != nil {
		slog.ErrorContext(ctx, "could not count sign-in events", slog.Any("error", errors.WithStack(err)))
		return
	}

	for outcome, total := range counts {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(total), string(outcome))
	}
}

func NewJournalCollector(counter OutcomeCounter, window time.Duration) *JournalCollector {
	return &JournalCollector{
		counter: counter,
		window:  window,
		timeout: 5 * time.Second,
		desc: prometheus.NewDesc(
			"signin_journal_events",
			"Journaled sign-in events per outcome over the collector window.",
			[]string{"outcome"},
			prometheus.Labels{"window": window.String()},
		),
	}
}

var _ prometheus.Collector = &JournalCollector{}
