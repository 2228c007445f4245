package frontend

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"MiniShop/pkg/kit"
)

const ServiceName = "frontend"

type HTTPDeps struct {
	Log    *zap.Logger
	Assets fs.FS
}

func NewHandler(deps HTTPDeps) http.Handler {
	r := chi.NewRouter()
	kit.Base(r, deps.Log)

	r.Get("/healthz", kit.Healthz)
	r.Get("/readyz", kit.Readyz)

	static := StaticHandler(deps.Assets)
	r.Method(http.MethodGet, "/*", static)
	r.Method(http.MethodHead, "/*", static)

	return r
}
