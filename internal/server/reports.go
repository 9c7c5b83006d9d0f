package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"sc2pulse-reports/internal/domain"
	"sc2pulse-reports/internal/report"
	"sc2pulse-reports/internal/service"

	"github.com/rs/zerolog"
)

// ReportServer serves the three report types as JSON row grids, header
// row first.
type ReportServer struct {
	summarySvc *service.SummaryService
	ladderSvc  *service.LadderService
	logger     zerolog.Logger
}

func NewReportServer(summarySvc *service.SummaryService, ladderSvc *service.LadderService, logger zerolog.Logger) *ReportServer {
	return &ReportServer{summarySvc: summarySvc, ladderSvc: ladderSvc, logger: logger}
}

func (s *ReportServer) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/reports/summary-1v1", s.handleSummary1v1)
	mux.HandleFunc("GET /api/reports/summary-1v1-clan", s.handleSummary1v1Clan)
	mux.HandleFunc("GET /api/reports/ladder", s.handleLadder)
	return mux
}

type rowsResponse struct {
	Rows []report.Row `json:"rows"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *ReportServer) handleSummary1v1(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	ids, err := parseIDs(q.Get("ids"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	depth, err := parsePositiveInt(q.Get("depth"), "depth")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rows, err := s.summarySvc.Summary1v1(r.Context(), service.Summary1v1Params{
		CharacterIDs: ids,
		DepthDays:    depth,
		SortBy:       q.Get("sort"),
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("summary report failed")
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, rowsResponse{Rows: rows})
}

func (s *ReportServer) handleSummary1v1Clan(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	tag := q.Get("tag")
	if tag == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("tag is required"))
		return
	}
	region, ok := domain.FindByName(domain.Regions, q.Get("region"))
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown region %q", q.Get("region")))
		return
	}
	depth, err := parsePositiveInt(q.Get("depth"), "depth")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rows, err := s.summarySvc.Summary1v1Clan(r.Context(), service.ClanSummaryParams{
		Tag:       tag,
		Region:    region.FullName,
		DepthDays: depth,
		SortBy:    q.Get("sort"),
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("clan summary report failed")
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, rowsResponse{Rows: rows})
}

func (s *ReportServer) handleLadder(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	count, err := parsePositiveInt(q.Get("count"), "count")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	params := service.LadderParams{
		Count:  count,
		Reveal: q.Get("reveal") == "true",
	}

	if raw := q.Get("regions"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			region, err := domain.ByName(domain.Regions, name)
			if err != nil {
				writeError(w, http.StatusBadRequest, fmt.Errorf("regions: %w", err))
				return
			}
			params.Regions = append(params.Regions, region)
		}
	}
	if raw := q.Get("leagues"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			league, err := domain.ByName(domain.Leagues, name)
			if err != nil {
				writeError(w, http.StatusBadRequest, fmt.Errorf("leagues: %w", err))
				return
			}
			params.Leagues = append(params.Leagues, league)
		}
	}
	if raw := q.Get("ratingStart"); raw != "" {
		params.RatingStart, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("ratingStart must be an integer"))
			return
		}
	}
	if raw := q.Get("season"); raw != "" {
		params.Season, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("season must be an integer"))
			return
		}
	}

	rows, err := s.ladderSvc.Ladder(r.Context(), params)
	if err != nil {
		s.logger.Error().Err(err).Msg("ladder report failed")
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, rowsResponse{Rows: rows})
}

func parseIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, fmt.Errorf("ids is required")
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid character id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parsePositiveInt(raw, name string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
