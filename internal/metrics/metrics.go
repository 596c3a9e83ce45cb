// Package metrics exposes Prometheus collectors for the record service.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gonotation"

type Metrics struct {
	Requests           *prometheus.CounterVec
	BranchesEnumerated prometheus.Counter
	CacheLookups       *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"route", "status"}),
		BranchesEnumerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "branches_enumerated_total",
			Help:      "Variations produced by the branch iterator.",
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "branch_cache_lookups_total",
			Help:      "Branch cache lookups by result.",
		}, []string{"result"}),
	}
}

func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.Requests, m.BranchesEnumerated, m.CacheLookups} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Middleware counts requests once the route pattern is known. Hijacked
// websocket connections are reported with status 0.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.Requests.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
	})
}
