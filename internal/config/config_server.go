package config

import (
	"fmt"
	"time"
)

// ServerServer holds the backend listener settings.
type ServerServer struct {
	HTTPAddress    string
	GRPCAddress    string
	RequestTimeout time.Duration
}

// ServerStorage holds the backend storage settings.
type ServerStorage struct {
	DB DB
}

// ServerConfig is the view of the configuration used by the backend.
type ServerConfig struct {
	App     App
	Server  ServerServer
	Storage ServerStorage
}

// GetServerConfig loads the structured configuration and narrows it to the
// settings of the backend.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App: cfg.App,
		Server: ServerServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			GRPCAddress:    cfg.Server.GRPCAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerStorage{
			DB: cfg.Storage.DB,
		},
	}

	if err := serverCfg.validate(); err != nil {
		return nil, err
	}

	return serverCfg, nil
}
