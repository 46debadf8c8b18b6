package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"valorant-analytics/internal/constants"
	"valorant-analytics/internal/domain"
	"valorant-analytics/internal/ingest"
	"valorant-analytics/internal/repository"

	"github.com/rs/zerolog"
)

type ImportService struct {
	matchRepo *repository.MatchRepository
	teamRepo  *repository.TeamRepository
	logRepo   *repository.ImportLogRepository
	logger    zerolog.Logger
}

func NewImportService(matchRepo *repository.MatchRepository, teamRepo *repository.TeamRepository, logRepo *repository.ImportLogRepository, logger zerolog.Logger) *ImportService {
	return &ImportService{matchRepo: matchRepo, teamRepo: teamRepo, logRepo: logRepo, logger: logger}
}

// TeamUpload attributes an uploaded match to its owning team.
type TeamUpload struct {
	TeamID       string
	OpponentName string
	Source       string
}

type importRequest struct {
	source   string
	policy   domain.ConflictPolicy
	teamID   *string
	opponent *string
}

// ImportMatch stores payload, replacing any previous import of the same
// match id.
func (s *ImportService) ImportMatch(ctx context.Context, payload any, source string) domain.ImportResult {
	return s.run(ctx, payload, importRequest{source: source, policy: domain.ConflictOverwrite})
}

// ImportForTeam stores payload for a team. A match that is already stored
// is left untouched and reported as skipped, whoever owns it.
func (s *ImportService) ImportForTeam(ctx context.Context, upload TeamUpload, payload any) domain.ImportResult {
	req := importRequest{
		source: upload.Source,
		policy: domain.ConflictSkip,
		teamID: &upload.TeamID,
	}
	if upload.OpponentName != "" {
		req.opponent = &upload.OpponentName
	}
	return s.run(ctx, payload, req)
}

// ImportReader decodes a JSON match document and imports it with the
// overwrite policy.
func (s *ImportService) ImportReader(ctx context.Context, r io.Reader, source string) domain.ImportResult {
	payload, err := ingest.DecodePayload(r)
	if err != nil {
		s.logger.Warn().Err(err).Str("source", source).Msg("rejected match payload")
		return errorResult("", err)
	}
	return s.ImportMatch(ctx, payload, source)
}

func (s *ImportService) ImportReaderForTeam(ctx context.Context, upload TeamUpload, r io.Reader) domain.ImportResult {
	payload, err := ingest.DecodePayload(r)
	if err != nil {
		s.logger.Warn().Err(err).Str("team_id", upload.TeamID).Msg("rejected match upload")
		return errorResult("", err)
	}
	return s.ImportForTeam(ctx, upload, payload)
}

func (s *ImportService) run(ctx context.Context, payload any, req importRequest) domain.ImportResult {
	ctx, cancel := context.WithTimeout(ctx, constants.ImportTimeout)
	defer cancel()

	parsed, err := ingest.Parse(payload)
	if err != nil {
		s.logger.Warn().Err(err).Str("source", req.source).Msg("rejected match payload")
		return errorResult("", err)
	}

	log := s.logger.With().
		Str("match_id", parsed.MatchID()).
		Str("source", req.source).
		Str("policy", req.policy.String()).
		Logger()

	bundle, err := ingest.Build(parsed)
	if err != nil {
		log.Warn().Err(err).Msg("rejected match payload")
		return s.finish(ctx, req, errorResult(parsed.MatchID(), err))
	}

	if req.teamID != nil {
		if _, err := s.teamRepo.Get(ctx, *req.teamID); err != nil {
			log.Warn().Err(err).Str("team_id", *req.teamID).Msg("upload for unknown team")
			if !errors.Is(err, domain.ErrTeamNotFound) {
				err = fmt.Errorf("%w: failed to load team: %w", domain.ErrPersistence, err)
			}
			return s.finish(ctx, req, errorResult(parsed.MatchID(), err))
		}
		bundle.Match.TeamID = req.teamID
		bundle.Match.OpponentName = req.opponent
	}

	stored, err := s.matchRepo.Store(ctx, bundle, req.policy)
	if err != nil {
		log.Error().Err(err).Msg("failed to store match")
		return s.finish(ctx, req, errorResult(parsed.MatchID(), fmt.Errorf("%w: %w", domain.ErrPersistence, err)))
	}

	if !stored {
		log.Info().Msg("match already stored, skipped")
		return s.finish(ctx, req, domain.ImportResult{
			Status:  domain.ImportStatusSkipped,
			MatchID: parsed.MatchID(),
			Reason:  domain.ErrMatchExists.Error(),
		})
	}

	log.Info().
		Int("players", len(bundle.Players)).
		Int("rounds", len(bundle.Rounds)).
		Int("kills", len(bundle.Kills)).
		Msg("match imported")

	return s.finish(ctx, req, domain.ImportResult{
		Status:  domain.ImportStatusImported,
		MatchID: parsed.MatchID(),
	})
}

// finish records the outcome in the import log. A failed log write does
// not change the outcome.
func (s *ImportService) finish(ctx context.Context, req importRequest, result domain.ImportResult) domain.ImportResult {
	detail := result.Reason
	if result.Failed() {
		detail = result.Error
	}

	err := s.logRepo.Record(context.WithoutCancel(ctx), domain.ImportLogEntry{
		MatchID: result.MatchID,
		Source:  req.source,
		Policy:  req.policy.String(),
		TeamID:  req.teamID,
		Status:  result.Status,
		Detail:  detail,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("match_id", result.MatchID).Msg("failed to record import")
	}
	return result
}

func (s *ImportService) RecentImports(ctx context.Context) ([]domain.ImportLogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.logRepo.Recent(ctx, constants.ImportLogLimit)
}

func errorResult(matchID string, err error) domain.ImportResult {
	return domain.ImportResult{
		Status:  domain.ImportStatusError,
		MatchID: matchID,
		Error:   err.Error(),
		Cause:   err,
	}
}
