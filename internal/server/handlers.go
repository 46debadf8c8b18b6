package server

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"valorant-analytics/internal/constants"
	"valorant-analytics/internal/domain"
	"valorant-analytics/internal/service"
)

const uploadSource = "upload"

type createTeamRequest struct {
	Name string `json:"name"`
}

type aliasRequest struct {
	Alias string `json:"alias"`
}

type mergeRequest struct {
	Target string `json:"target"`
}

type batchResponse struct {
	Results []domain.FileImportResult `json:"results"`
	Summary domain.ImportSummary      `json:"summary"`
}

func (s *Server) createTeam(w http.ResponseWriter, r *http.Request) {
	var req createTeamRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	team, err := s.teamSvc.CreateTeam(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTeamResponse(team))
}

func (s *Server) getTeam(w http.ResponseWriter, r *http.Request) {
	team, err := s.teamSvc.GetTeam(r.Context(), r.PathValue("teamID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTeamResponse(team))
}

// uploadMatch accepts a raw JSON match body, or a multipart form carrying
// one or more match files. Matches that are already stored are skipped.
func (s *Server) uploadMatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadBytes)

	upload := service.TeamUpload{
		TeamID:       r.PathValue("teamID"),
		OpponentName: strings.TrimSpace(r.URL.Query().Get("opponent")),
		Source:       uploadSource,
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		result := s.importSvc.ImportReaderForTeam(r.Context(), upload, r.Body)
		writeJSON(w, importStatus(result), result)
		return
	}

	reader, err := r.MultipartReader()
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err))
		return
	}

	var results []domain.FileImportResult
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err))
			return
		}
		if part.FileName() == "" {
			part.Close()
			continue
		}

		fileUpload := upload
		fileUpload.Source = uploadSource + ":" + part.FileName()
		result := s.importSvc.ImportReaderForTeam(r.Context(), fileUpload, part)
		part.Close()

		results = append(results, domain.FileImportResult{File: part.FileName(), ImportResult: result})
	}

	writeJSON(w, http.StatusOK, batchResponse{Results: results, Summary: domain.Summarize(results)})
}

func (s *Server) scanImport(w http.ResponseWriter, r *http.Request) {
	results, summary, err := s.scanSvc.ImportDirectory(r.Context(), "")
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, batchResponse{Results: results, Summary: summary})
}

func (s *Server) listImports(w http.ResponseWriter, r *http.Request) {
	entries, err := s.importSvc.RecentImports(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := make([]importLogResponse, len(entries))
	for i, e := range entries {
		resp[i] = toImportLogResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getMatch(w http.ResponseWriter, r *http.Request) {
	detail, err := s.matchDetailSvc.GetMatch(r.Context(), r.PathValue("matchID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchResponse(detail))
}

func (s *Server) deleteMatch(w http.ResponseWriter, r *http.Request) {
	if err := s.matchDetailSvc.DeleteMatch(r.Context(), r.PathValue("matchID")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) searchPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.playerSvc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := make([]playerResponse, len(players))
	for i := range players {
		resp[i] = toPlayerResponse(&players[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := s.playerSvc.GetPlayer(r.Context(), r.PathValue("puuid"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlayerResponse(player))
}

func (s *Server) setAlias(w http.ResponseWriter, r *http.Request) {
	var req aliasRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	player, err := s.playerSvc.SetAlias(r.Context(), r.PathValue("puuid"), req.Alias)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlayerResponse(player))
}

func (s *Server) mergePlayer(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	player, err := s.playerSvc.Merge(r.Context(), r.PathValue("puuid"), req.Target)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlayerResponse(player))
}

func (s *Server) unmergePlayer(w http.ResponseWriter, r *http.Request) {
	player, err := s.playerSvc.Unmerge(r.Context(), r.PathValue("puuid"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlayerResponse(player))
}
