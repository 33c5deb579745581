package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-catalog-api/internal/config"
	"github.com/MKhiriev/go-catalog-api/internal/handler"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
)

type server struct {
	httpServer *httpServer
	workers    Runner
	logger     *logger.Logger
}

// NewServer creates the HTTP server for handlers. workers may be nil.
func NewServer(handlers *handler.Handlers, workers Runner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	workersCtx, cancelWorkers := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	if s.workers != nil {
		wg.Go(func() {
			s.workers.Run(workersCtx)
		})
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
		s.Shutdown(context.Background())
		err = <-serveErr
	case err = <-serveErr:
		// the listener failed before any signal
	}

	cancelWorkers()
	wg.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) Shutdown(ctx context.Context) {
	s.httpServer.Shutdown(ctx)
}
