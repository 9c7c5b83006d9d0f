package report

import (
	"sort"
	"strings"

	"sc2pulse-reports/internal/api"
)

// summaryKeys maps accepted sort keys to field accessors. Dynamic
// field-name resolution is deliberately not supported.
var summaryKeys = map[string]func(api.CharacterSummary) int{
	"rating_last": func(s api.CharacterSummary) int { return s.RatingLast },
	"rating_avg":  func(s api.CharacterSummary) int { return s.RatingAvg },
	"rating_max":  func(s api.CharacterSummary) int { return s.RatingMax },
	"games":       func(s api.CharacterSummary) int { return s.Games },
}

// NormalizeSortKey lowercases and collapses whitespace to underscores, so
// "Rating Last" and "rating_last" select the same key.
func NormalizeSortKey(sortBy string) string {
	return strings.Join(strings.Fields(strings.ToLower(sortBy)), "_")
}

// SortSummaries orders summaries descending by the named field. Unknown
// keys leave the order untouched.
func SortSummaries(summaries []api.CharacterSummary, sortBy string) {
	key, ok := summaryKeys[NormalizeSortKey(sortBy)]
	if !ok {
		return
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return key(summaries[i]) > key(summaries[j])
	})
}
