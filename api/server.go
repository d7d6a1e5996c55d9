package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/rom8726/chatsweep"
)

// Plugin mounts extra routes next to the core ones.
type Plugin interface {
	Name() string
	Description() string
	RegisterRoutes(mux *http.ServeMux)
}

// Server exposes the run registry and the routes of its plugins.
type Server struct {
	store    chatsweep.Store
	plugins  []Plugin
	handlers map[string]http.Handler
}

func NewServer(store chatsweep.Store, plugins ...Plugin) *Server {
	return &Server{
		store:    store,
		plugins:  plugins,
		handlers: make(map[string]http.Handler),
	}
}

// Handle mounts an extra handler, e.g. the metrics endpoint.
func (s *Server) Handle(pattern string, handler http.Handler) {
	s.handlers[pattern] = handler
}

func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()

	RegisterCoreRoutes(mux, s.store)

	for _, plugin := range s.plugins {
		plugin.RegisterRoutes(mux)
		slog.Debug("[chatsweep] api plugin registered", "plugin", plugin.Name(), "description", plugin.Description())
	}

	for pattern, handler := range s.handlers {
		mux.Handle(pattern, handler)
	}

	return mux
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Mux(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	slog.Info("[chatsweep] api listening", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	}
}
