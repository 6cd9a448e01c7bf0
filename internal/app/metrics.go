package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "calendar"

var (
	pageViews = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "page_views_total",
		Help:      "Rendered calendar pages by view.",
	}, []string{"view"})

	redirects = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "redirects_total",
		Help:      "Redirects issued for out of range or malformed paths.",
	}, []string{"reason"})

	weatherRefreshes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "weather_refreshes_total",
		Help:      "Weather forecast refreshes by result.",
	}, []string{"result"})
)

// Redirect reasons.
const (
	reasonToday        = "today"
	reasonMonthRoll    = "month_rollover"
	reasonBadWeek      = "invalid_week"
	reasonBadDate      = "invalid_date"
	reasonBadYear      = "invalid_year"
	reasonNotAnInteger = "not_an_integer"
)

// RegisterMetrics registers the calendar collectors with reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{pageViews, redirects, weatherRefreshes} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// MetricsHandler serves the metrics gathered by g.
func MetricsHandler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
