// Package health runs the tiny keep-alive web server that uptime monitors
// ping to confirm the bot process is up. It carries no bot logic.
package health

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Server is the liveness HTTP endpoint.
type Server struct {
	srv *http.Server
}

// New builds the server listening on addr.
func New(addr string) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         addr,
			Handler:      newRouter(),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
	}
}

func newRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("LFG Bot is Alive!"))
	}).Methods(http.MethodGet)
	return r
}

// Start serves in a background goroutine.
func (s *Server) Start() {
	go func() {
		slog.Info("Keep-alive server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Keep-alive server failed", "error", err)
		}
	}()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
