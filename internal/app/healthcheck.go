package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// healthHandler reports liveness.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// newServeMux wires the health and metrics endpoints.
func (a *App) newServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	mux.Handle("/metrics", a.metrics.Handler())
	return mux
}

// startHealthcheckServer runs the health check HTTP server in the background.
func (a *App) startHealthcheckServer(port int) {
	a.logger.Debug("Configuring health check server.")
	addr := fmt.Sprintf(":%d", port)
	a.httpServer = &http.Server{
		Addr:              addr,
		Handler:           a.newServeMux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	srv := a.httpServer
	go func() {
		a.logger.Info("🩺 Health check server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
		// ListenAndServe returns ErrServerClosed on graceful shutdown.
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("Health check server failed unexpectedly", "error", err)
		}
	}()
}

func (a *App) closeHealthcheckServer(ctx context.Context) error {
	if a.httpServer == nil {
		a.logger.Debug("Health check server was not running.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	a.logger.Info("🩺 Shutting down health check server...")
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("Health check server shutdown failed", "error", err)
		return err
	}
	a.httpServer = nil
	a.logger.Debug("Health check server shut down gracefully.")
	return nil
}
