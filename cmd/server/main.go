package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/docnav/internal/api"
	"github.com/dgallion1/docnav/internal/config"
	"github.com/dgallion1/docnav/internal/content"
	"github.com/dgallion1/docnav/internal/parser"
	"github.com/dgallion1/docnav/internal/pathstore"
	"github.com/dgallion1/docnav/internal/site"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize page source.
	var src content.Source
	var ps *pathstore.Client
	switch cfg.PagesSource {
	case config.SourcePathstore:
		ps = pathstore.NewClient(cfg.PathstoreURL, cfg.PathstoreAPIKey, cfg.PathstorePrefix)
		src = ps
	default:
		opts := parser.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext}
		src = content.NewDirSource(os.DirFS(cfg.ContentDir), opts, log)
	}

	// Initialize navigation index.
	index := site.NewIndex(src, cfg.ReloadInterval, log)
	index.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(index, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		index.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if ps != nil {
			ps.Close()
		}
	}()

	log.Info("starting docnav", "port", cfg.Port, "source", cfg.PagesSource, "pages", index.Snapshot().Pages)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
