// Package metric provides a Prometheus metrics registry for queue
// instrumentation.
//
// The Registry wraps a private prometheus.Registry, namespaces
// registrations by component, rejects duplicate registrations with
// classified errors, and ships Go runtime and process collectors by
// default. Components register their own counters, gauges, and histograms;
// Handler() exposes everything in Prometheus exposition format for the
// embedding application to mount.
//
//	registry := metric.NewRegistry()
//	q, err := queue.New[int](64, 256, queue.WithMetrics[int](registry, "ingest"))
//	...
//	http.Handle("/metrics", registry.Handler())
//
// Metrics are optional throughout the module: every component works without
// a registry and keeps its always-on in-process statistics regardless.
package metric
