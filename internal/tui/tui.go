// Package tui is the interactive terminal front end of the user directory.
//
// A single bubbletea program shows the directory as a table and owns a
// [directory.Controller]; every keystroke that changes the search term or
// the sort mode recomputes the view from the full record set. All network
// calls run as tea.Cmd so the screen stays responsive, and no error ends the
// program: failures surface as dismissible notices.
package tui

import (
	"context"

	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/service"
	"github.com/MKhiriev/user-directory/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  service.ClientUserService
	cfg       config.ClientView
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services service.ClientUserService, cfg config.ClientView, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.cfg, t.buildInfo, t.logger)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
