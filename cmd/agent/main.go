package main

import (
	"context"
	"fmt"

	"github.com/akovalev/go-field-sync/internal/adapter"
	"github.com/akovalev/go-field-sync/internal/agent"
	"github.com/akovalev/go-field-sync/internal/config"
	"github.com/akovalev/go-field-sync/internal/connectivity"
	"github.com/akovalev/go-field-sync/internal/crypto"
	"github.com/akovalev/go-field-sync/internal/handler"
	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/internal/server"
	"github.com/akovalev/go-field-sync/internal/service"
	"github.com/akovalev/go-field-sync/internal/store"
	"github.com/akovalev/go-field-sync/internal/tui"
	"github.com/akovalev/go-field-sync/internal/workers"
	"github.com/akovalev/go-field-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetAgentConfig()
	if err != nil {
		bootLog := logger.NewLogger("field-sync-agent", "")
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log := newAgentLogger(cfg)
	log.Debug().Any("config", cfg).Msg("received configs")

	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Remote, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote adapter")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local buffer")
	}
	defer storages.DB.Close()

	sealSalt, err := storages.DB.EnsureSealSalt(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("read seal salt")
	}

	sealer, err := crypto.NewSealer(cfg.App.SealSecret, sealSalt)
	if err != nil {
		log.Fatal().Err(err).Msg("create payload sealer")
	}

	monitor := connectivity.NewMonitor(log)
	prober := connectivity.NewProber(monitor, remote, cfg.Workers.ProbeInterval, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services := service.NewServices(storages, remote, sealer, monitor, cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Facade, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create facade handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Facade, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create facade server")
	}

	var ui *tui.TUI
	if cfg.App.TUIMode {
		ui = tui.New(services, buildInfo)
	}

	app, err := agent.NewApp(srv, workers.NewWorkers(prober, services.SyncJob), ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init agent error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("agent run error")
	}
}

// newAgentLogger keeps log output off stdout while the status screen owns
// the terminal.
func newAgentLogger(cfg *config.AgentConfig) *logger.Logger {
	if cfg.App.TUIMode && cfg.App.LogFile != "" {
		return logger.NewFileLogger("field-sync-agent", cfg.App.LogLevel, cfg.App.LogFile)
	}
	return logger.NewLogger("field-sync-agent", cfg.App.LogLevel)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
