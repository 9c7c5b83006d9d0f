package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sc2pulse-reports/internal/api"
	"sc2pulse-reports/internal/config"
	"sc2pulse-reports/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upstream fakes just enough of the remote API for handler tests.
func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/season/list/all":
			_ = json.NewEncoder(w).Encode([]api.Season{{BattlenetID: 61}})
		case strings.HasPrefix(r.URL.Path, "/ladder/a/"):
			page := api.LadderPage{}
			if strings.HasPrefix(r.URL.Path, "/ladder/a/10001/") {
				page.Result = []api.Team{{
					ID: 1, Rating: 6500, Wins: 10, Losses: 2, Region: "EU",
					League:  api.TeamLeague{Type: 6},
					Members: []api.TeamMember{{Character: api.Character{ID: 5, Name: "Serral#1"}, ZergGamesPlayed: 99}},
				}}
			}
			_ = json.NewEncoder(w).Encode(page)
		case strings.Contains(r.URL.Path, "/summary/1v1/"):
			_ = json.NewEncoder(w).Encode([]api.CharacterSummary{
				{PlayerCharacterID: 100, Race: "TERRAN", Games: 7, RatingLast: 4100},
			})
		case strings.HasPrefix(r.URL.Path, "/character/"):
			_ = json.NewEncoder(w).Encode([]api.Character{{ID: 100, Name: "Maru#1"}})
		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestServer(apiRoot string) *ReportServer {
	cfg := &config.Config{WebRoot: "https://example.test", APIRoot: apiRoot}
	pulse := api.NewPulseClient(cfg, nil, zerolog.Nop())
	return NewReportServer(
		service.NewSummaryService(pulse, cfg, zerolog.Nop()),
		service.NewLadderService(pulse, cfg, zerolog.Nop()),
		zerolog.Nop(),
	)
}

func doRequest(s *ReportServer, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandlerValidation(t *testing.T) {
	s := newTestServer("http://unused.invalid")

	tests := []struct {
		name   string
		target string
	}{
		{"summary missing ids", "/api/reports/summary-1v1?depth=30"},
		{"summary bad ids", "/api/reports/summary-1v1?ids=1,x&depth=30"},
		{"summary missing depth", "/api/reports/summary-1v1?ids=1,2"},
		{"summary zero depth", "/api/reports/summary-1v1?ids=1&depth=0"},
		{"clan missing tag", "/api/reports/summary-1v1-clan?region=eu&depth=30"},
		{"clan unknown region", "/api/reports/summary-1v1-clan?tag=KT&region=mars&depth=30"},
		{"ladder missing count", "/api/reports/ladder"},
		{"ladder unknown league", "/api/reports/ladder?count=5&leagues=wood"},
		{"ladder unknown region", "/api/reports/ladder?count=5&regions=mars"},
		{"ladder bad ratingStart", "/api/reports/ladder?count=5&ratingStart=abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(s, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandleLadder(t *testing.T) {
	remote := upstream(t)
	defer remote.Close()
	s := newTestServer(remote.URL)

	rec := doRequest(s, "/api/reports/ladder?count=1&regions=eu&leagues=grandmaster")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp rowsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "Name", resp.Rows[0][0])
	assert.Equal(t, "Serral", resp.Rows[1][0])
	assert.Equal(t, "zerg", resp.Rows[1][1])
	assert.Equal(t, float64(6500), resp.Rows[1][2])
	assert.Equal(t, "grandmaster", resp.Rows[1][6])
}

func TestHandleSummary1v1(t *testing.T) {
	remote := upstream(t)
	defer remote.Close()
	s := newTestServer(remote.URL)

	rec := doRequest(s, "/api/reports/summary-1v1?ids=100&depth=30&sort=rating_last")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp rowsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "Maru", resp.Rows[1][0])
	assert.Equal(t, "terran", resp.Rows[1][1])
	assert.Equal(t, float64(7), resp.Rows[1][2])
}

func TestHandleLadderUpstreamFailure(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer remote.Close()
	s := newTestServer(remote.URL)

	rec := doRequest(s, "/api/reports/ladder?count=1&season=50")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
