package service

import (
	"context"
	"fmt"
	"strings"

	"sc2pulse-reports/internal/api"
	"sc2pulse-reports/internal/config"
	"sc2pulse-reports/internal/constants"
	"sc2pulse-reports/internal/report"

	"github.com/rs/zerolog"
)

type SummaryService struct {
	pulse  *api.PulseClient
	cfg    *config.Config
	logger zerolog.Logger
}

func NewSummaryService(pulse *api.PulseClient, cfg *config.Config, logger zerolog.Logger) *SummaryService {
	return &SummaryService{pulse: pulse, cfg: cfg, logger: logger}
}

type Summary1v1Params struct {
	CharacterIDs []int64
	DepthDays    int
	// SortBy defaults to rating_last.
	SortBy string
}

type ClanSummaryParams struct {
	Tag       string
	Region    string
	DepthDays int
	SortBy    string
}

// FetchCharacterSummaries collects summaries for all ids, batching
// sequentially under the server's id limit. Windows deeper than the
// supported maximum force one request per id. Any failed batch fails the
// whole call.
func (s *SummaryService) FetchCharacterSummaries(ctx context.Context, ids []int64, depthDays int) ([]api.CharacterSummary, error) {
	batchSize := constants.SummaryBatchSize
	if depthDays > constants.MaxSummaryDepthDays {
		batchSize = 1
	}

	var summaries []api.CharacterSummary
	for from := 0; from < len(ids); from += batchSize {
		to := min(from+batchSize, len(ids))
		batch, err := s.pulse.GetCharacterSummaries(ctx, ids[from:to], depthDays)
		if err != nil {
			return nil, fmt.Errorf("fetch summaries for ids[%d:%d]: %w", from, to, err)
		}
		summaries = append(summaries, batch...)
	}

	s.logger.Debug().
		Int("ids", len(ids)).
		Int("depth_days", depthDays).
		Int("batch_size", batchSize).
		Int("summaries", len(summaries)).
		Msg("character summaries fetched")
	return summaries, nil
}

// Summary1v1 builds the per-character 1v1 report: a header row followed by
// one row per summary, sorted descending by the requested field.
func (s *SummaryService) Summary1v1(ctx context.Context, params Summary1v1Params) ([]report.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = constants.DefaultSummarySort
	}

	s.logger.Info().
		Int("ids", len(params.CharacterIDs)).
		Int("depth_days", params.DepthDays).
		Str("sort_by", sortBy).
		Msg("building 1v1 summary report")

	summaries, err := s.FetchCharacterSummaries(ctx, params.CharacterIDs, params.DepthDays)
	if err != nil {
		return nil, err
	}
	report.SortSummaries(summaries, sortBy)

	ids := make([]int64, len(summaries))
	for i, sum := range summaries {
		ids[i] = sum.PlayerCharacterID
	}
	characters, err := s.characterMap(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := []report.Row{report.SummaryHeader()}
	for _, sum := range summaries {
		rows = append(rows, report.SummaryRow(s.cfg.WebRoot, sum, characters[sum.PlayerCharacterID]))
	}
	return rows, nil
}

// Summary1v1Clan resolves a clan tag to member characters via search,
// keeps the ones in the requested region and builds the same report from
// the search results' embedded identities.
func (s *SummaryService) Summary1v1Clan(ctx context.Context, params ClanSummaryParams) ([]report.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = constants.DefaultSummarySort
	}

	s.logger.Info().
		Str("tag", params.Tag).
		Str("region", params.Region).
		Int("depth_days", params.DepthDays).
		Str("sort_by", sortBy).
		Msg("building clan 1v1 summary report")

	results, err := s.pulse.SearchCharacters(ctx, "["+params.Tag+"]")
	if err != nil {
		return nil, fmt.Errorf("search clan %q: %w", params.Tag, err)
	}

	var ids []int64
	characters := make(map[int64]api.Character)
	for _, r := range results {
		ch := r.Members.Character
		if !strings.EqualFold(ch.Region, params.Region) {
			continue
		}
		if _, seen := characters[ch.ID]; seen {
			continue
		}
		ids = append(ids, ch.ID)
		characters[ch.ID] = ch
	}

	summaries, err := s.FetchCharacterSummaries(ctx, ids, params.DepthDays)
	if err != nil {
		return nil, err
	}
	report.SortSummaries(summaries, sortBy)

	rows := []report.Row{report.SummaryHeader()}
	for _, sum := range summaries {
		rows = append(rows, report.SummaryRow(s.cfg.WebRoot, sum, characters[sum.PlayerCharacterID]))
	}
	return rows, nil
}

func (s *SummaryService) characterMap(ctx context.Context, ids []int64) (map[int64]api.Character, error) {
	if len(ids) == 0 {
		return map[int64]api.Character{}, nil
	}
	characters, err := s.pulse.GetCharacters(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch characters: %w", err)
	}
	byID := make(map[int64]api.Character, len(characters))
	for _, c := range characters {
		byID[c.ID] = c
	}
	return byID, nil
}
