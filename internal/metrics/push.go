package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"ordersync/internal/application/commands"
)

// Pusher reports run outcomes to a Prometheus Pushgateway, the usual way to
// monitor cron-style one-shot jobs. Pushing happens after the terminal
// append, so a failed push never fails the run.
type Pusher struct {
	url string
	job string
}

// NewPusher creates a Pusher targeting the gateway at url under job
func NewPusher(url, job string) *Pusher {
	return &Pusher{url: url, job: job}
}

// PushSuccess publishes the gauges for a completed run, replacing any
// previous values for the job.
func (p *Pusher) PushSuccess(res *commands.SyncResult) error {
	reg := prometheus.NewRegistry()

	lastSuccess := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ordersync_last_success_timestamp_seconds",
		Help: "Unix time of the last successful sync.",
	})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ordersync_run_duration_seconds",
		Help: "Wall-clock duration of the last sync run.",
	})
	sourceTotal := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ordersync_source_total",
		Help: "Order total reported by each source for the synced range.",
	}, []string{"source"})

	reg.MustRegister(lastSuccess, duration, sourceTotal)

	lastSuccess.SetToCurrentTime()
	duration.Set(res.Elapsed.Seconds())
	for _, t := range res.Totals {
		sourceTotal.WithLabelValues(string(t.Source)).Set(t.Amount.InexactFloat64())
	}

	return push.New(p.url, p.job).Gatherer(reg).Push()
}
