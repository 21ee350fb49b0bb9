package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/directory"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/service"
	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/gosuri/uitable"
)

type App struct {
	services *service.ClientServices
	ui       UI
	cfg      *config.ClientConfig
	out      io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg *config.ClientConfig, logger *logger.Logger) (Client, error) {
	if services == nil || services.UserService == nil {
		return nil, ErrNoServices
	}
	if ui == nil && !cfg.Print.Enabled {
		return nil, ErrNoUI
	}

	return &App{
		services: services,
		ui:       ui,
		cfg:      cfg,
		out:      os.Stdout,
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.cfg.Print.Enabled {
		return a.printTable(ctx)
	}

	a.logger.Info().Msg("starting interactive ui")
	return a.ui.Run(ctx)
}

// printTable renders the directory once using the same view rules as the
// interactive UI.
func (a *App) printTable(ctx context.Context) error {
	users, err := a.services.UserService.List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	controller := directory.NewController(
		directory.WithLanguage(a.cfg.View.Language),
		directory.WithDefaultSort(a.cfg.View.DefaultSort),
	)
	controller.Load(users)
	view := controller.SetSearch(a.cfg.Print.Search)

	if view.Empty() {
		_, err = fmt.Fprintln(a.out, view.Placeholder())
		return err
	}

	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("ID", "NAME", "EMAIL", "CREATED")
	for _, row := range view.Rows() {
		created := row.Created
		if created == "" {
			created = "-"
		}
		table.AddRow(row.ID, utils.StripControl(row.Name), utils.StripControl(row.Email), created)
	}

	if _, err = fmt.Fprintln(a.out, table); err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, view.Summary())
	return err
}
