package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"MiniShop/internal/product"
	"MiniShop/pkg/kit"
)

func main() {
	cfg, err := kit.LoadConfig(kit.Defaults{Port: 5000})
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := kit.NewLogger(product.ServiceName, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	s := &product.Server{Log: logger}
	h := product.NewHandler(s, product.HTTPDeps{
		Log:          logger,
		Service:      product.ServiceName,
		Registry:     kit.NewRegistry(),
		MetricsToken: cfg.MetricsToken,
	})

	if err := kit.RunHTTPServer(context.Background(), cfg.Addr(), h, logger, cfg.ShutdownTimeout); err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}
