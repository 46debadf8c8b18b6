package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"valorant-analytics/internal/domain"
	"valorant-analytics/internal/middleware"
	"valorant-analytics/internal/service"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type Server struct {
	importSvc      *service.ImportService
	scanSvc        *service.ScanService
	matchDetailSvc *service.MatchDetailService
	playerSvc      *service.PlayerService
	teamSvc        *service.TeamService
	logger         zerolog.Logger
}

func NewServer(
	importSvc *service.ImportService,
	scanSvc *service.ScanService,
	matchDetailSvc *service.MatchDetailService,
	playerSvc *service.PlayerService,
	teamSvc *service.TeamService,
	logger zerolog.Logger,
) *Server {
	return &Server{
		importSvc:      importSvc,
		scanSvc:        scanSvc,
		matchDetailSvc: matchDetailSvc,
		playerSvc:      playerSvc,
		teamSvc:        teamSvc,
		logger:         logger,
	}
}

// Handler returns the API with request ids and CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/teams", s.createTeam)
	mux.HandleFunc("GET /api/teams/{teamID}", s.getTeam)
	mux.HandleFunc("POST /api/teams/{teamID}/matches", s.uploadMatch)

	mux.HandleFunc("POST /api/import/scan", s.scanImport)
	mux.HandleFunc("GET /api/imports", s.listImports)

	mux.HandleFunc("GET /api/matches/{matchID}", s.getMatch)
	mux.HandleFunc("DELETE /api/matches/{matchID}", s.deleteMatch)

	mux.HandleFunc("GET /api/players", s.searchPlayers)
	mux.HandleFunc("GET /api/players/{puuid}", s.getPlayer)
	mux.HandleFunc("PUT /api/players/{puuid}/alias", s.setAlias)
	mux.HandleFunc("PUT /api/players/{puuid}/merge", s.mergePlayer)
	mux.HandleFunc("DELETE /api/players/{puuid}/merge", s.unmergePlayer)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.RequestID(s.logger)(c.Handler(mux))
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidMatchData), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrTeamNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSelfMerge), errors.Is(err, domain.ErrMergeCycle):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// importStatus maps an import outcome to a response code. Skipped is a
// success.
func importStatus(result domain.ImportResult) int {
	switch result.Status {
	case domain.ImportStatusImported:
		return http.StatusCreated
	case domain.ImportStatusSkipped:
		return http.StatusOK
	default:
		return errorStatus(result.Cause)
	}
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return nil
}
