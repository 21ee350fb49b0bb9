package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/user-directory/internal/adapter"
	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/seed"
	"github.com/MKhiriev/user-directory/internal/service"
)

func main() {
	log := logger.NewLogger("user-directory-seed")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}
	services := service.NewClientServices(serverAdapter, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rnd := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	report, err := seed.NewSeeder(services.UserService, log).Seed(ctx, cfg.Seed.Count, rnd)
	fmt.Printf("created %d users, %d rejected\n", report.Created, report.Failed)
	if err != nil {
		fmt.Fprintln(os.Stderr, service.UserMessage(err))
		log.Err(err).Msg("seed run error")
		stop()
		os.Exit(1)
	}
}
