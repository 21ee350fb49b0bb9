package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/user-directory/internal/adapter"
	"github.com/MKhiriev/user-directory/internal/client"
	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/service"
	"github.com/MKhiriev/user-directory/internal/tui"
	"github.com/MKhiriev/user-directory/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("user-directory-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if !cfg.Print.Enabled {
		fmt.Println(buildInfo)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)

	var ui client.UI
	if !cfg.Print.Enabled {
		ui = tui.New(services.UserService, cfg.View, buildInfo, log)
	}

	app, err := client.NewApp(services, ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, service.UserMessage(err))
		log.Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}
