package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nemanja-m/goscatter/internal/api/rest"
	"github.com/nemanja-m/goscatter/internal/runs"
	"github.com/nemanja-m/goscatter/internal/shared/config"
	"github.com/nemanja-m/goscatter/internal/shared/logging"
	"github.com/nemanja-m/goscatter/internal/shared/metrics"

	_ "github.com/nemanja-m/goscatter/examples/dft"
	_ "github.com/nemanja-m/goscatter/examples/identity"
	_ "github.com/nemanja-m/goscatter/examples/movavg"
)

func main() {
	configPath := flag.String("config", "", "path to server config file")
	flag.Parse()

	cfg, err := config.LoadServer(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	registry := prometheus.NewRegistry()
	service := runs.NewService(runs.NewMemoryStore(), cfg.Run, metrics.New(registry), logger)
	server := rest.NewServer(cfg.HTTP, service, registry, logger)

	go func() {
		logger.Info("Starting run server", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	// Give the server 30 seconds to finish serving ongoing requests.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	// Let in-flight runs reach a terminal state before exiting.
	service.Drain()

	logger.Info("Server stopped")
}
