package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthService_Check(t *testing.T) {
	ok := NewHealthService(pingFunc(func(context.Context) error { return nil }), logger.Nop())
	assert.NoError(t, ok.Check(context.Background()))

	down := errors.New("connection refused")
	failing := NewHealthService(pingFunc(func(context.Context) error { return down }), logger.Nop())
	assert.ErrorIs(t, failing.Check(context.Background()), down)
}
