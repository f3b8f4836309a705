package http

import (
	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/query"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/internal/utils"
)

type Handler struct {
	services *service.Services

	security     config.Security
	queryOptions query.Options
	development  bool

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		security:     cfg.Security,
		queryOptions: queryOptionsFromConfig(cfg.Query),
		development:  cfg.App.IsDevelopment(),
		traceIDs:     utils.NewUUIDGenerator(),
		logger:       logger,
	}
}

func queryOptionsFromConfig(cfg config.Query) query.Options {
	return query.Options{
		DefaultPage:   cfg.DefaultPage,
		DefaultLimit:  cfg.DefaultLimit,
		DefaultSort:   cfg.DefaultSort,
		TieBreakField: cfg.TieBreakField,
		ExcludedField: cfg.ExcludedField,
	}
}
