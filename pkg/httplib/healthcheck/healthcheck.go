// Package healthcheck intercepts GET /health ahead of the application
// router.
package healthcheck

import (
	"fmt"
	"net/http"
)

// ReadyFunc reports whether the service can currently serve traffic.
type ReadyFunc func() error

// HealthCheck is the health check handler. A nil Ready always reports
// healthy.
type HealthCheck struct {
	Ready ReadyFunc
}

// Handler is used to control the flow of the GET /health endpoint.
func (hc HealthCheck) Handler(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if IsHealthCheckRequest(r) {
			hc.ServeHTTP(w, r)

			return
		}

		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

// ServeHTTP serves the health check request.
func (hc HealthCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if hc.Ready != nil {
		if err := hc.Ready(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintln(w, err.Error())

			return
		}
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// IsHealthCheckRequest is used to check if the request is a health check request.
func IsHealthCheckRequest(r *http.Request) bool {
	return r.Method == http.MethodGet && r.URL.Path == "/health"
}
