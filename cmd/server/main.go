// Command main is the entry point for the Retrospace data service.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"retrospace/internal/config"
	"retrospace/internal/document"
	"retrospace/internal/observability"
	"retrospace/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.TraceEnabled {
		shutdown, err := observability.InitTracing(observability.TracingConfig{
			ServiceName:  "retrospace-data",
			Environment:  cfg.Env,
			Enabled:      true,
			Exporter:     cfg.TraceExporter,
			OTLPEndpoint: cfg.OTLPEndpoint,
		})
		if err != nil {
			log.Fatalf("Failed to initialize tracing: %v", err)
		}
		defer shutdown(context.Background())
	}

	store, err := document.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open document store: %v", err)
	}

	srv := server.NewServer(cfg, store)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Data service starting on port %s (engine=%s)...", cfg.Port, cfg.StoreEngine)
	if err := srv.Listen(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
