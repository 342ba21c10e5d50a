package workers

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"campaign-hub/errors"
)

// HTTPServerWorker serves until ctx is done, then shuts down gracefully.
// Requests handled by the server inherit ctx as their base context.
type HTTPServerWorker struct {
	log             *slog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
	listening       chan string
}

func NewHTTPServerWorker(log *slog.Logger, addr string, handler http.Handler,
	readHeaderTimeout, shutdownTimeout time.Duration) *HTTPServerWorker {
	return &HTTPServerWorker{
		log: log,
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		shutdownTimeout: shutdownTimeout,
		listening:       make(chan string, 1),
	}
}

// Listening yields the bound address once the listener is open.
func (w *HTTPServerWorker) Listening() <-chan string {
	return w.listening
}

func (w *HTTPServerWorker) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", w.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", w.server.Addr, err)
	}
	w.server.BaseContext = func(net.Listener) context.Context { return ctx }

	addr := listener.Addr().String()
	w.log.Info("HTTP server listening", "address", addr)
	select {
	case w.listening <- addr:
	default:
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- w.server.Serve(listener)
	}()

	select {
	case err = <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()
		w.log.Info("Shutting down HTTP server")
		if err = w.server.Shutdown(shutdownCtx); err != nil {
			w.log.Warn("HTTP server shutdown incomplete", "error", err)
			_ = w.server.Close()
		}
		return nil
	}
}
