package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/user-directory/internal/logger"
)

// pinger is satisfied by *store.Storages.
type pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	storage pinger

	logger *logger.Logger
}

func NewHealthService(storage pinger, logger *logger.Logger) HealthService {
	return &healthService{storage: storage, logger: logger}
}

func (h *healthService) Check(ctx context.Context) error {
	if err := h.storage.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("storage is not reachable")
		return fmt.Errorf("storage ping: %w", err)
	}
	return nil
}
