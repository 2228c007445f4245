package kit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	labelService  = "service"
	labelMethod   = "method"
	labelEndpoint = "endpoint"
	labelStatus   = "status"

	defaultStatusCode = http.StatusOK

	// statusClientClosed labels requests whose client went away before any
	// response was written.
	statusClientClosed = 499

	RequestsMetric = "http_requests_total"
	LatencyMetric  = "http_server_request_duration_seconds"
)

type Metrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// NewRegistry returns a registry preloaded with the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: RequestsMetric,
				Help: "Total HTTP requests",
			},
			[]string{labelService, labelMethod, labelStatus},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    LatencyMetric,
				Help:    "Request duration seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{labelService, labelEndpoint},
		),
	}

	reg.MustRegister(m.Requests, m.Latency)
	return m
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// Middleware instruments only the handlers it wraps. Probes and /metrics are
// left unwrapped so they never move the request counter.
func (m *Metrics) Middleware(service string, endpointLabel func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{
				ResponseWriter: w,
				status:         defaultStatusCode,
			}

			start := time.Now()
			next.ServeHTTP(sw, r)

			status := sw.status
			if !sw.wroteHeader && r.Context().Err() != nil {
				status = statusClientClosed
			}

			m.Latency.WithLabelValues(service, endpointLabel(r)).
				Observe(time.Since(start).Seconds())

			m.Requests.WithLabelValues(service, r.Method, strconv.Itoa(status)).
				Inc()
		})
	}
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
