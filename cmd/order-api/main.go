package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"MiniShop/internal/order"
	"MiniShop/pkg/kit"
)

func main() {
	cfg, err := kit.LoadConfig(kit.Defaults{Port: 4000})
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := kit.NewLogger(order.ServiceName, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	h := order.NewHandler(order.HTTPDeps{
		Log:          logger,
		Service:      order.ServiceName,
		Registry:     kit.NewRegistry(),
		MetricsToken: cfg.MetricsToken,
	})

	if err := kit.RunHTTPServer(context.Background(), cfg.Addr(), h, logger, cfg.ShutdownTimeout); err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}
