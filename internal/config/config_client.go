package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/user-directory/internal/directory"
	"golang.org/x/text/language"
)

// ClientAdapter holds the backend location used by the client.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientView holds the parsed directory view settings.
type ClientView struct {
	Language    language.Tag
	DefaultSort directory.SortMode
	NoticeTTL   time.Duration
}

// ClientConfig is the view of the configuration used by the client.
type ClientConfig struct {
	App     App
	Adapter ClientAdapter
	View    ClientView
	Print   Print
	Seed    Seed
}

// GetClientConfig loads the structured configuration and narrows it to the
// settings of the client.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	tag := directory.DefaultLanguage
	if cfg.View.Locale != "" {
		parsed, err := language.Parse(cfg.View.Locale)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidViewConfigs, err)
		}
		tag = parsed
	}

	sortMode, err := directory.ParseSortMode(cfg.View.DefaultSort)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidViewConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: cfg.App,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		View: ClientView{
			Language:    tag,
			DefaultSort: sortMode,
			NoticeTTL:   cfg.View.NoticeTTL,
		},
		Print: cfg.Print,
		Seed:  cfg.Seed,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
