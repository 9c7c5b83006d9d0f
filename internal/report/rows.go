// Package report turns API records into fixed-column rows suitable for a
// spreadsheet grid. Rows hold only strings and numbers.
package report

import (
	"fmt"
	"strings"

	"sc2pulse-reports/internal/api"
	"sc2pulse-reports/internal/domain"
)

type Row = []any

func SummaryHeader() Row {
	return Row{"Name", "Race", "Games", "Last MMR", "Avg MMR", "Max MMR", "Pulse link"}
}

func LadderHeader() Row {
	return Row{"Name", "Race", "MMR", "Wins", "Losses", "Region", "League", "Tier", "Pulse link"}
}

// TrimBattleTag strips the "#1234" discriminator. A name without one is
// returned unchanged.
func TrimBattleTag(name string) string {
	if i := strings.Index(name, "#"); i >= 0 {
		return name[:i]
	}
	return name
}

// DisplayName prefers the professional nickname when reveal is set,
// otherwise the trimmed battletag.
func DisplayName(m api.TeamMember, reveal bool) string {
	if reveal && m.ProNickname != "" {
		return m.ProNickname
	}
	return TrimBattleTag(m.Character.Name)
}

// FavoriteRace is the race with the most played games. Ties go to the
// earliest variant in catalog order.
func FavoriteRace(m api.TeamMember) domain.Race {
	games := [...]int{
		m.TerranGamesPlayed,
		m.ProtossGamesPlayed,
		m.ZergGamesPlayed,
		m.RandomGamesPlayed,
	}
	best := 0
	for i := 1; i < len(games); i++ {
		if games[i] > games[best] {
			best = i
		}
	}
	return domain.Races[best]
}

// ProfileLink is the public profile URL for a character.
func ProfileLink(webRoot string, characterID int64) string {
	return fmt.Sprintf("%s/?type=character&id=%d&m=1#player-stats-mmr", webRoot, characterID)
}

// LadderRow projects one ladder team. Only the first member is shown,
// so 2v2+ teams get a single representative row cell.
func LadderRow(webRoot string, t api.Team, reveal bool) Row {
	var m api.TeamMember
	if len(t.Members) > 0 {
		m = t.Members[0]
	}

	leagueName := ""
	if league, ok := domain.FindByCode(domain.Leagues, t.League.Type); ok {
		leagueName = league.Name
	}

	tier := any("")
	if t.TierType != nil {
		tier = *t.TierType + 1
	}

	return Row{
		DisplayName(m, reveal),
		FavoriteRace(m).Name,
		t.Rating,
		t.Wins,
		t.Losses,
		t.Region,
		leagueName,
		tier,
		ProfileLink(webRoot, m.Character.ID),
	}
}

// SummaryRow projects one character summary joined with its identity.
func SummaryRow(webRoot string, s api.CharacterSummary, c api.Character) Row {
	return Row{
		TrimBattleTag(c.Name),
		strings.ToLower(s.Race),
		s.Games,
		s.RatingLast,
		s.RatingAvg,
		s.RatingMax,
		ProfileLink(webRoot, c.ID),
	}
}
