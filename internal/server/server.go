package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/akovalev/go-field-sync/internal/config"
	"github.com/akovalev/go-field-sync/internal/handler"
	"github.com/akovalev/go-field-sync/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.AgentFacade, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating facade server...")
	srv := new(server)

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		srv.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if srv.httpServer == nil {
		return nil, errNoFacadeServer
	}

	srv.logger = logger

	return srv, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Error().Err(err).Msg("error running facade server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errNoFacadeServer
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching facade server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("facade server shut down gracefully")

	return nil
}
