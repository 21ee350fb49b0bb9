package server

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/handler"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/mock"
	"github.com/MKhiriev/user-directory/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T, cfg config.ServerServer) *server {
	t.Helper()
	ctrl := gomock.NewController(t)
	health := mock.NewMockHealthService(ctrl)
	health.EXPECT().Check(gomock.Any()).Return(nil).AnyTimes()

	handlers, err := handler.NewHandlers(&service.Services{HealthService: health}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	s := newTestServer(t, config.ServerServer{
		HTTPAddress: "127.0.0.1:0",
		GRPCAddress: "127.0.0.1:0",
	})
	require.NotNil(t, s.httpServer)
	require.NotNil(t, s.gRPCServer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_OnlyGRPC(t *testing.T) {
	s := newTestServer(t, config.ServerServer{GRPCAddress: "127.0.0.1:0"})

	assert.Nil(t, s.httpServer)
	require.NotNil(t, s.gRPCServer)
	s.Shutdown()
}

func TestNewServer_GRPCListenError(t *testing.T) {
	cfg := config.ServerServer{GRPCAddress: "256.0.0.1:bad"}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, cfg, logger.Nop())
	assert.Error(t, err)
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.ServerServer{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}
