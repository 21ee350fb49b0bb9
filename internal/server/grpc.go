package server

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/user-directory/internal/config"
	myGRPC "github.com/MKhiriev/user-directory/internal/handler/grpc"
	"github.com/MKhiriev/user-directory/internal/logger"

	"google.golang.org/grpc"
)

const healthCheckInterval = 10 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	stop     chan struct{}
	stopOnce sync.Once

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.ServerServer, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("gRPC listen on %q: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		stop:            make(chan struct{}),
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	go g.watchHealth()

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

// watchHealth refreshes the health status until Shutdown.
func (g *grpcServer) watchHealth() {
	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()

	for {
		ctx, cancel := context.WithTimeout(context.Background(), healthCheckInterval/2)
		g.handler.Refresh(ctx)
		cancel()

		select {
		case <-g.stop:
			return
		case <-ticker.C:
		}
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.stopOnce.Do(func() { close(g.stop) })
	g.handler.Shutdown()
	g.server.GracefulStop()
	// Serve closes the listener itself; this covers a server that never ran.
	_ = g.gRPCNetListener.Close()
}
