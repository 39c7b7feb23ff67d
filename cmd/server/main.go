package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eruixma/one-click-campaign/internal/api"
	"github.com/eruixma/one-click-campaign/internal/audit"
	"github.com/eruixma/one-click-campaign/internal/config"
	"github.com/eruixma/one-click-campaign/internal/registry"
	"github.com/eruixma/one-click-campaign/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	telemetry.Init()

	auditor := audit.NewService(audit.StdoutSink{}, nil, nil, cfg.AuditQueueSize)
	defer auditor.Close()

	snap := registry.GetSnapshot()
	log.Printf("registry: %d tables, %d exclusion rules, etag=%s",
		len(snap.Tables), len(snap.Exclusions), snap.ETag)
	telemetry.RegistryEntries.WithLabelValues("tables").Set(float64(len(snap.Tables)))
	telemetry.RegistryEntries.WithLabelValues("exclusions").Set(float64(len(snap.Exclusions)))
	telemetry.RegistryEntries.WithLabelValues("packages").Set(float64(len(snap.Packages)))

	srvAPI := api.NewServer(cfg.APIKey, auditor)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      srvAPI.Router(),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		log.Printf("listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	metricsSrv := &http.Server{
		Addr:    cfg.MetricsAddr,
		Handler: promhttp.Handler(),
	}
	go func() {
		log.Printf("metrics on %s", cfg.MetricsAddr)
		if err := metricsSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShut)
	_ = metricsSrv.Shutdown(ctxShut)
	log.Println("stopped")
}
