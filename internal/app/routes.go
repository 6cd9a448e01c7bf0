package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

// NewRouter returns the handler for every route. In private mode all routes
// except /healthz and /metrics require Basic Auth.
func NewRouter(cfg Config, logger *slog.Logger, gatherer prometheus.Gatherer) http.Handler {
	pages := http.NewServeMux()
	pages.HandleFunc("GET /{$}", ServeIndex)
	pages.HandleFunc("GET /month/{year}/{month}", HandleMonth)
	pages.HandleFunc("GET /week/{year}/{week}", HandleWeek)
	pages.HandleFunc("GET /day/{year}/{month}/{day}", HandleDay)
	pages.HandleFunc("GET /api/month/{year}/{month}", HandleMonthJSON)
	pages.HandleFunc("GET /api/week/{year}/{week}", HandleWeekJSON)
	pages.HandleFunc("GET /export/weeks/{year}", HandleWeekNumbersICS)
	pages.Handle("GET /static/", http.FileServerFS(StaticFS()))

	var protected http.Handler = pages
	if cfg.Private {
		protected = RequireAuth(pages)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", HandleHealth)
	mux.Handle("GET /metrics", MetricsHandler(gatherer))
	mux.Handle("/", protected)
	return WithRequestLogger(logger, mux)
}
