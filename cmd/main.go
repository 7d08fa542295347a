package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AutoNateAI/insta-matrix-insights-flow/cart"
	"github.com/AutoNateAI/insta-matrix-insights-flow/config"
	"github.com/AutoNateAI/insta-matrix-insights-flow/handler"
	"github.com/AutoNateAI/insta-matrix-insights-flow/metrics"
	"github.com/AutoNateAI/insta-matrix-insights-flow/router"
	"github.com/AutoNateAI/insta-matrix-insights-flow/store"
)

func main() {
	// Load configuration
	cfg := config.Load()
	metrics.Init("insights-service", cfg.Version, cfg.Environment)

	// Optional NATS event publishing
	var publisher *handler.EventPublisher
	if cfg.NATSUrl != "" {
		p, err := handler.NewEventPublisher(cfg.NATSUrl)
		if err != nil {
			log.Printf("[WARN] NATS connection failed, events disabled: %v", err)
		} else {
			publisher = p
			defer publisher.Close()
			log.Printf("[INFO] Connected to NATS at %s", cfg.NATSUrl)
		}
	}

	dataStore := store.New()
	selection := cart.New()

	r := router.Setup(dataStore, selection, publisher)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in background
	go func() {
		log.Printf("Insights service starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down insights service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Insights service stopped")
}
