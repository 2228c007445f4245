package order

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"MiniShop/pkg/kit"
)

const ServiceName = "order-api"

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsToken string
}

func NewHandler(deps HTTPDeps) http.Handler {
	if deps.Service == "" {
		deps.Service = ServiceName
	}

	r := chi.NewRouter()
	kit.Base(r, deps.Log)

	r.Get("/healthz", kit.Healthz)
	r.Get("/readyz", kit.Readyz)

	list := http.Handler(http.HandlerFunc(listOrders))
	if deps.Registry != nil {
		metrics := kit.NewMetrics(deps.Registry)
		list = metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath)(list)

		r.With(kit.MetricsAuth(deps.MetricsToken)).
			Handle("/metrics", kit.MetricsHandler(deps.Registry))
	}
	r.Method(http.MethodGet, "/orders", list)

	return r
}
