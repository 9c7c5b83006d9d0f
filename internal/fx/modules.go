package fx

import (
	"sc2pulse-reports/internal/api"
	"sc2pulse-reports/internal/config"
	"sc2pulse-reports/internal/database"
	"sc2pulse-reports/internal/logger"
	"sc2pulse-reports/internal/repository"
	"sc2pulse-reports/internal/server"
	"sc2pulse-reports/internal/service"

	"go.uber.org/fx"
)

func ProvideAPICache(cache *repository.ResponseCache) api.ResponseCache {
	return cache
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// storage
	fx.Provide(repository.NewResponseCache),
	fx.Provide(ProvideAPICache),
	// api client
	fx.Provide(api.NewPulseClient),
	// svc
	fx.Provide(service.NewSummaryService),
	fx.Provide(service.NewLadderService),
	// server
	fx.Provide(server.NewReportServer),
)
