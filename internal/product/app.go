package product

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"MiniShop/pkg/kit"
)

const ServiceName = "product-api"

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsToken string
}

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	if deps.Service == "" {
		deps.Service = ServiceName
	}

	r := chi.NewRouter()
	kit.Base(r, deps.Log)

	r.Get("/healthz", kit.Healthz)
	r.Get("/readyz", kit.Readyz)

	list := http.Handler(s.ListHandler())
	if deps.Registry != nil {
		metrics := kit.NewMetrics(deps.Registry)
		list = metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath)(list)

		r.With(kit.MetricsAuth(deps.MetricsToken)).
			Handle("/metrics", kit.MetricsHandler(deps.Registry))
	}
	r.Method(http.MethodGet, "/products", list)

	return r
}
