package fx

import (
	"database/sql"
	"valorant-analytics/internal/api"
	"valorant-analytics/internal/config"
	"valorant-analytics/internal/database"
	"valorant-analytics/internal/db"
	"valorant-analytics/internal/logger"
	"valorant-analytics/internal/repository"
	"valorant-analytics/internal/server"
	"valorant-analytics/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

// CoreModule is everything needed to import and read matches.
var CoreModule = fx.Options(
	logger.Module,
	config.Module,
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewMatchRepository),
	fx.Provide(repository.NewTeamRepository),
	fx.Provide(repository.NewImportLogRepository),
	// reference data
	fx.Provide(fx.Annotate(api.NewValAPIClient, fx.As(new(service.ReferenceSource)))),
	fx.Provide(service.NewReferenceCache),
	// svc
	fx.Provide(fx.Annotate(service.NewDirSource, fx.As(new(service.FileSource)))),
	fx.Provide(service.NewImportService),
	fx.Provide(service.NewScanService),
	fx.Provide(service.NewMatchDetailService),
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewTeamService),
)

var Module = fx.Options(
	CoreModule,
	// server
	fx.Provide(server.NewServer),
)
