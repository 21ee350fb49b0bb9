package config

import "errors"

var (
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidViewConfigs    = errors.New("invalid view configuration")
	ErrInvalidSeedConfigs    = errors.New("invalid seed configuration")
)
