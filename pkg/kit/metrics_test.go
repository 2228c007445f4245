package kit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MiniShop/pkg/kit"
)

func TestMetricsMiddleware_StatusAndEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := kit.NewMetrics(reg)

	r := chi.NewRouter()
	mw := m.Middleware("svc", kit.ChiRoutePatternOrPath)
	r.With(mw).Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("x"))
	})

	for _, p := range []string{"/items/1", "/items/2", "/items/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	exp := `
# HELP http_requests_total Total HTTP requests
# TYPE http_requests_total counter
http_requests_total{method="GET",service="svc",status="200"} 2
http_requests_total{method="GET",service="svc",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(exp), kit.RequestsMetric))

	assert.Equal(t, 1, testutil.CollectAndCount(m.Latency))
	assert.Equal(t, uint64(3), histogramCount(t, reg, "/items/{id}"))
}

func TestMetricsMiddleware_OutsideChi(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := kit.NewMetrics(reg)

	h := m.Middleware("svc", kit.ChiRoutePatternOrPath)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/raw", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("svc", http.MethodPost, "418")))
	assert.Equal(t, uint64(1), histogramCount(t, reg, "/raw"))
}

func TestMetricsMiddleware_ClientGone(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := kit.NewMetrics(reg)

	h := m.Middleware("svc", kit.ChiRoutePatternOrPath)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/slow", nil).WithContext(ctx))

	// a response written before the client left keeps its real status
	h = m.Middleware("svc", kit.ChiRoutePatternOrPath)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/slow", nil).WithContext(ctx))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("svc", http.MethodGet, "499")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("svc", http.MethodGet, "202")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Requests.WithLabelValues("svc", http.MethodGet, "200")))
}

func TestNewRegistry_DefaultCollectors(t *testing.T) {
	reg := kit.NewRegistry()

	n, err := testutil.GatherAndCount(reg, "go_goroutines")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func histogramCount(t *testing.T, reg *prometheus.Registry, endpoint string) uint64 {
	t.Helper()

	mfs, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range mfs {
		if mf.GetName() != kit.LatencyMetric {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "endpoint" && lp.GetValue() == endpoint {
					return m.GetHistogram().GetSampleCount()
				}
			}
		}
	}
	return 0
}
