package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns an HTTP handler that exposes the registry's metrics in
// Prometheus exposition format. Callers mount it wherever their service
// serves diagnostics; the library does not run a server of its own.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(
		r.prometheusRegistry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		},
	)
}
