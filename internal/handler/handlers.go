package handler

import (
	"github.com/akovalev/go-field-sync/internal/config"
	"github.com/akovalev/go-field-sync/internal/handler/http"
	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.AgentFacade, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating facade handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoFacadeAddress
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
