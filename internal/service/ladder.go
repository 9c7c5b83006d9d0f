package service

import (
	"context"
	"fmt"

	"sc2pulse-reports/internal/api"
	"sc2pulse-reports/internal/config"
	"sc2pulse-reports/internal/constants"
	"sc2pulse-reports/internal/domain"
	"sc2pulse-reports/internal/report"

	"github.com/rs/zerolog"
)

type LadderService struct {
	pulse  *api.PulseClient
	cfg    *config.Config
	logger zerolog.Logger
}

func NewLadderService(pulse *api.PulseClient, cfg *config.Config, logger zerolog.Logger) *LadderService {
	return &LadderService{pulse: pulse, cfg: cfg, logger: logger}
}

type LadderParams struct {
	Count int
	// Regions and Leagues default to the full catalogs when empty.
	Regions []domain.Region
	Leagues []domain.League
	// RatingStart defaults when zero or negative.
	RatingStart int
	Reveal      bool
	// Season zero means the most recent season.
	Season int
}

// FetchLadderTeams walks the remotely-paginated ladder from ratingStart
// downwards until count teams are collected or the ladder runs out. Pages
// arrive sorted by descending rating; the cursor always advances to the
// last team of the previous page, so the walk terminates.
func (s *LadderService) FetchLadderTeams(ctx context.Context, count, season int, regions []domain.Region, leagues []domain.League, ratingStart int) ([]api.Team, error) {
	// nothing to collect, issue no request at all
	if count <= 0 {
		return nil, nil
	}

	cursor := domain.StartCursor(ratingStart)
	var teams []api.Team
	pages := 0
	for len(teams) < count {
		page, err := s.pulse.GetLadderPage(ctx, cursor, season, regions, leagues)
		if err != nil {
			return nil, fmt.Errorf("ladder page at cursor %d/%d: %w", cursor.Rating, cursor.ID, err)
		}
		pages++
		if len(page) == 0 {
			break
		}
		teams = append(teams, page...)
		last := page[len(page)-1]
		cursor = domain.LadderCursor{Rating: last.Rating, ID: last.ID}
	}

	if len(teams) > count {
		teams = teams[:count]
	}

	s.logger.Debug().
		Int("count", count).
		Int("season", season).
		Int("pages", pages).
		Int("teams", len(teams)).
		Msg("ladder teams fetched")
	return teams, nil
}

// Ladder builds the ladder snapshot report: a header row followed by one
// row per team, in descending rating order.
func (s *LadderService) Ladder(ctx context.Context, params LadderParams) ([]report.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	regions := params.Regions
	if len(regions) == 0 {
		regions = domain.Regions
	}
	leagues := params.Leagues
	if len(leagues) == 0 {
		leagues = domain.Leagues
	}
	ratingStart := params.RatingStart
	if ratingStart <= 0 {
		ratingStart = constants.DefaultRatingStart
	}

	season := params.Season
	if season == 0 {
		current, err := s.CurrentSeason(ctx)
		if err != nil {
			return nil, err
		}
		season = current
	}

	s.logger.Info().
		Int("count", params.Count).
		Int("season", season).
		Int("rating_start", ratingStart).
		Bool("reveal", params.Reveal).
		Msg("building ladder report")

	teams, err := s.FetchLadderTeams(ctx, params.Count, season, regions, leagues, ratingStart)
	if err != nil {
		return nil, err
	}

	rows := []report.Row{report.LadderHeader()}
	for _, t := range teams {
		rows = append(rows, report.LadderRow(s.cfg.WebRoot, t, params.Reveal))
	}
	return rows, nil
}

// CurrentSeason is the battlenet id of the first entry of the season list.
func (s *LadderService) CurrentSeason(ctx context.Context) (int, error) {
	seasons, err := s.pulse.GetSeasons(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch seasons: %w", err)
	}
	if len(seasons) == 0 {
		return 0, fmt.Errorf("season list is empty")
	}
	return seasons[0].BattlenetID, nil
}
