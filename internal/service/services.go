package service

import (
	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/store"
	"github.com/MKhiriev/user-directory/models"
)

type Services struct {
	UserService    UserService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	userService := NewUserService(storages.UserRepository, logger)

	return &Services{
		UserService:    NewUserValidationService().Wrap(userService),
		AppInfoService: NewAppInfoService(cfg, buildInfo, logger),
		HealthService:  NewHealthService(storages, logger),
	}
}
