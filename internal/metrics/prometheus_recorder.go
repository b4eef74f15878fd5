package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "sitecontent"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	resolutions     *prom.CounterVec
	listingDuration *prom.HistogramVec
	listingSize     *prom.GaugeVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
// A nil registerer gets a private registry.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		resolutions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Document resolutions by content kind and outcome",
		}, []string{"kind", "outcome"}),
		listingDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "listing_duration_seconds",
			Help:      "Duration of collection listings",
			Buckets:   prom.DefBuckets,
		}, []string{"kind"}),
		listingSize: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "listing_items",
			Help:      "Number of items returned by the last collection listing",
		}, []string{"kind"}),
	}
	reg.MustRegister(pr.resolutions, pr.listingDuration, pr.listingSize)
	return pr
}

func (p *PrometheusRecorder) ObserveResolution(kind string, outcome Outcome) {
	if p == nil || p.resolutions == nil {
		return
	}
	p.resolutions.WithLabelValues(kind, string(outcome)).Inc()
}

func (p *PrometheusRecorder) ObserveListing(kind string, count int, d time.Duration) {
	if p == nil || p.listingDuration == nil {
		return
	}
	p.listingDuration.WithLabelValues(kind).Observe(d.Seconds())
	p.listingSize.WithLabelValues(kind).Set(float64(count))
}
