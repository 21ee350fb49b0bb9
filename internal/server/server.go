package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/handler"
	"github.com/MKhiriev/user-directory/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.ServerServer, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run starts every created server and blocks until ctx is done and all of
// them have stopped.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return fmt.Errorf("%w: nothing to run", errNoServersAreCreated)
	}

	stopped := make(chan struct{}, 2)
	running := 0

	// launch all created servers
	if s.httpServer != nil {
		running++
		go func() {
			s.httpServer.RunServer()
			stopped <- struct{}{}
		}()
	}
	if s.gRPCServer != nil {
		running++
		go func() {
			s.gRPCServer.RunServer()
			stopped <- struct{}{}
		}()
	}

	select {
	case <-ctx.Done():
	case <-stopped:
		running--
		s.logger.Warn().Msg("a server stopped unexpectedly, shutting down")
	}

	s.Shutdown()
	for ; running > 0; running-- {
		<-stopped
	}

	s.logger.Info().Msg("server Shutdown gracefully")

	if ctx.Err() == nil {
		return errors.New("server stopped before shutdown was requested")
	}
	return nil
}
