package service

import (
	"github.com/MKhiriev/user-directory/internal/adapter"
	"github.com/MKhiriev/user-directory/internal/logger"
)

type ClientServices struct {
	UserService ClientUserService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		UserService: NewClientUserService(serverAdapter, logger),
	}
}
