package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nikolayk812/foodcart-demo/internal/catalog"
	"github.com/nikolayk812/foodcart-demo/internal/httpapi"
	"github.com/nikolayk812/foodcart-demo/internal/port"
	"github.com/nikolayk812/foodcart-demo/internal/repository"
	"github.com/nikolayk812/foodcart-demo/internal/store"
)

func main() {
	ctx := context.Background()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	// DATABASE_URL selects the durable session backend; without it session
	// state lives only for the process lifetime.
	var kv port.KVStore
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			logger.Fatal("connecting to postgres failed", zap.Error(err))
		}
		defer pool.Close()

		kv = repository.NewKV(pool)
		logger.Info("session storage: postgres")
	} else {
		kv = repository.NewMemoryKV()
		logger.Info("session storage: in-memory")
	}

	session := store.NewSession(kv, logger)
	restored := session.Load(ctx)
	logger.Info("session restored", zap.Stringer("status", restored.Status))

	server := httpapi.NewServer(
		catalog.Items(),
		store.NewCart(),
		store.NewFavorites(),
		session,
		store.NewNotifications(catalog.Feed()),
		logger,
	)

	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + httpPort,
		Handler:      server.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		sig := <-c
		logger.Info("shutting down", zap.Stringer("signal", sig))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", zap.Error(err))
		}
		close(idleConnsClosed)
	}()

	logger.Info("listening", zap.String("port", httpPort))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}

	<-idleConnsClosed
	logger.Info("server stopped")
}
