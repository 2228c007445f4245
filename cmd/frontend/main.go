package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"MiniShop/internal/frontend"
	"MiniShop/pkg/kit"
)

func main() {
	cfg, err := kit.LoadConfig(kit.Defaults{Port: 3000, StaticDir: "./public"})
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := kit.NewLogger(frontend.ServiceName, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if st, err := os.Stat(cfg.StaticDir); err != nil || !st.IsDir() {
		logger.Warn("static dir not readable, every asset will 404",
			zap.String("dir", cfg.StaticDir), zap.Error(err))
	}

	h := frontend.NewHandler(frontend.HTTPDeps{
		Log:    logger,
		Assets: os.DirFS(cfg.StaticDir),
	})

	logger.Info("serving static assets", zap.String("dir", cfg.StaticDir))
	if err := kit.RunHTTPServer(context.Background(), cfg.Addr(), h, logger, cfg.ShutdownTimeout); err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}
