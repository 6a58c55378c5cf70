package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"thirdcoast.systems/typeset/cmd/web/auth"
	"thirdcoast.systems/typeset/cmd/web/handlers/reader"
	"thirdcoast.systems/typeset/cmd/web/internal/web"
	"thirdcoast.systems/typeset/internal/article"
	"thirdcoast.systems/typeset/internal/catalog"
	"thirdcoast.systems/typeset/internal/config"
	"thirdcoast.systems/typeset/internal/viewstore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf, err := config.LoadConfig(ctx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: conf.SlogLevel()})))

	slog.Info("Starting web service")

	cat, err := catalog.Load(conf.CatalogPath)
	if err != nil {
		slog.Error("failed to load option catalog", "error", err)
		os.Exit(1)
	}

	art, err := article.Load()
	if err != nil {
		slog.Error("failed to load article", "error", err)
		os.Exit(1)
	}

	layout, err := reader.Layout(cat, art)
	if err != nil {
		slog.Error("failed to render layout", "error", err)
		os.Exit(1)
	}

	store := viewstore.New(cat, layout, viewstore.Options{
		IdleTTL:  conf.ViewIdleTTL,
		MaxViews: conf.MaxViews,
	})
	go store.Run(ctx)

	sessionMgr, err := auth.NewSessionManager(conf.SessionSecret)
	if err != nil {
		slog.Error("failed to create session manager", "error", err)
		os.Exit(1)
	}

	e, err := web.NewWebserver(ctx, store, art, sessionMgr)
	if err != nil {
		slog.Error("failed to create webserver", "error", err)
		os.Exit(1)
	}

	addr := ":" + strconv.Itoa(conf.WebServerPort)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	slog.Info("Listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		// Echo returns an error on Shutdown; treat it as normal if context is done.
		if ctx.Err() != nil {
			return
		}
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
