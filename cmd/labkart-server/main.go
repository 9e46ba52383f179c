package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"labkart/internal/catalog"
	"labkart/internal/config"
	"labkart/internal/server"
)

func main() {
	cfg, err := config.Load()
	must(err)

	resolver := catalog.Default()
	// Warm the index before accepting traffic; the first lookup pays for
	// the full catalog drain otherwise.
	stats := resolver.Stats()
	log.Printf("catalog ready: rows=%d slugs=%d codes=%d", stats["rows"], stats["slugs"], stats["codes"])

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.New(resolver),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		log.Printf("listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSec)*time.Second)
	defer shutdownCancel()
	must(srv.Shutdown(shutdownCtx))
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
