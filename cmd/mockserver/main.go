// Command mockserver runs the in-process API double as a standalone HTTP
// server for local development of the client.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/recipenest/client-go/config"
	"github.com/recipenest/client-go/internal/mockserver"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if config.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	srv, err := mockserver.NewServer(cfg.JWTSecret, mockserver.WithLogger(logger))
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	httpSrv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: srv.Handler(),
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting mock API server", zap.String("port", cfg.ServerPort))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		logger.Fatal("server error", zap.Error(err))
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
