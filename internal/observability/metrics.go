// Package observability provides metrics and tracing for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreErrors counts document store failures by engine and operation.
	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "retrospace_store_errors_total",
		Help: "Total number of document store errors by engine and operation",
	}, []string{"engine", "operation"})

	// GatewayFallbacks counts startup probes that selected the local backend.
	GatewayFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "retrospace_gateway_fallbacks_total",
		Help: "Startup reachability probes that fell back to the local store",
	})

	// RemoteCallErrors counts failed calls against the remote data service.
	RemoteCallErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "retrospace_remote_call_errors_total",
		Help: "Total number of failed remote data service calls by operation",
	}, []string{"operation"})
)
