package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/toolbox-vault/internal/config"
	"github.com/MKhiriev/toolbox-vault/internal/logger"
)

const shutdownTimeout = 5 * time.Second

type server struct {
	httpServer *httpServer
	addr       string
	logger     *logger.Logger
}

// NewServer opens the bridge listener and prepares handler to be served on
// it.
func NewServer(handler http.Handler, cfg config.Bridge, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	ln, err := listen(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening bridge listener: %w", err)
	}

	return &server{
		httpServer: newHTTPServer(handler, ln, cfg.RequestTimeout, logger),
		addr:       ln.Addr().String(),
		logger:     logger,
	}, nil
}

func (s *server) Addr() string {
	return s.addr
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.addr).Msg("Launching HTTP server")
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
