package service_test

import (
	"context"
	"errors"
	"testing"
	"valorant-analytics/internal/api"
	"valorant-analytics/internal/config"
	"valorant-analytics/internal/db"
	"valorant-analytics/internal/repository"
	"valorant-analytics/internal/service"
	"valorant-analytics/internal/testutil"

	"github.com/rs/zerolog"
)

var errOffline = errors.New("reference api offline")

type offlineSource struct{}

func (offlineSource) GetAgents(context.Context) ([]api.Agent, error) { return nil, errOffline }
func (offlineSource) GetMaps(context.Context) ([]api.Map, error)     { return nil, errOffline }

type fixture struct {
	cfg     *config.Config
	matches *repository.MatchRepository
	teams   *service.TeamService
	imports *service.ImportService
	scanner *service.ScanService
	details *service.MatchDetailService
	people  *service.PlayerService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	cfg := testutil.Config(t)
	sqlDB := testutil.NewDB(t, cfg)
	queries := db.New(sqlDB)
	logger := zerolog.Nop()

	matchRepo := repository.NewMatchRepository(sqlDB, queries, logger)
	playerRepo := repository.NewPlayerRepository(sqlDB, queries, logger)
	teamRepo := repository.NewTeamRepository(queries, logger)
	logRepo := repository.NewImportLogRepository(sqlDB, queries, logger)

	imports := service.NewImportService(matchRepo, teamRepo, logRepo, logger)
	references := service.NewReferenceCache(offlineSource{}, cfg, logger)

	return fixture{
		cfg:     cfg,
		matches: matchRepo,
		teams:   service.NewTeamService(teamRepo, logger),
		imports: imports,
		scanner: service.NewScanService(service.NewDirSource(cfg), imports, cfg, logger),
		details: service.NewMatchDetailService(references, matchRepo, playerRepo, logger),
		people:  service.NewPlayerService(playerRepo, logger),
	}
}
