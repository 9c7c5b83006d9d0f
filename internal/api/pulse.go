package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sc2pulse-reports/internal/config"
	"sc2pulse-reports/internal/domain"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// ResponseCache is an optional transparent cache consulted before any GET
// goes out. A nil cache disables caching without affecting behavior.
type ResponseCache interface {
	Get(ctx context.Context, url string) ([]byte, bool, error)
	Put(ctx context.Context, url string, body []byte) error
}

type PulseClient struct {
	apiRoot string
	client  *fasthttp.Client
	cache   ResponseCache
	logger  zerolog.Logger
}

func NewPulseClient(cfg *config.Config, cache ResponseCache, logger zerolog.Logger) *PulseClient {
	return &PulseClient{
		apiRoot: strings.TrimRight(cfg.APIRoot, "/"),
		cache:   cache,
		logger:  logger,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// SearchCharacters runs a character search, e.g. for a bracketed clan tag.
func (c *PulseClient) SearchCharacters(ctx context.Context, term string) ([]CharacterSearchResult, error) {
	reqURL := fmt.Sprintf("%s/character/search?term=%s", c.apiRoot, url.QueryEscape(term))
	return getJSON[[]CharacterSearchResult](ctx, c, reqURL)
}

// GetCharacters resolves character identities for the given ids in one
// request. The caller keeps the id count within server limits.
func (c *PulseClient) GetCharacters(ctx context.Context, ids []int64) ([]Character, error) {
	reqURL := fmt.Sprintf("%s/character/%s", c.apiRoot, joinIDs(ids))
	return getJSON[[]Character](ctx, c, reqURL)
}

// GetCharacterSummaries fetches 1v1 summaries for one id batch over the
// given look-back window in days.
func (c *PulseClient) GetCharacterSummaries(ctx context.Context, ids []int64, depthDays int) ([]CharacterSummary, error) {
	reqURL := fmt.Sprintf("%s/character/%s/summary/1v1/%d", c.apiRoot, joinIDs(ids), depthDays)
	return getJSON[[]CharacterSummary](ctx, c, reqURL)
}

// GetLadderPage fetches one descending-rating ladder page anchored just
// below the cursor, for the 1v1 arranged queue.
func (c *PulseClient) GetLadderPage(ctx context.Context, cursor domain.LadderCursor, season int, regions []domain.Region, leagues []domain.League) ([]Team, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s/ladder/a/%d/%d/1?season=%d&queue=%s&team-type=%s&page=1",
		c.apiRoot, cursor.Rating, cursor.ID, season,
		domain.Queue1v1.FullName, domain.TeamTypeArranged.FullName)
	for _, r := range regions {
		fmt.Fprintf(&sb, "&%s=true", r.Name)
	}
	for _, l := range leagues {
		fmt.Fprintf(&sb, "&%s=true", l.Short)
	}

	page, err := getJSON[LadderPage](ctx, c, sb.String())
	if err != nil {
		return nil, err
	}
	return page.Result, nil
}

// GetSeasons lists all seasons, most recent first.
func (c *PulseClient) GetSeasons(ctx context.Context) ([]Season, error) {
	return getJSON[[]Season](ctx, c, c.apiRoot+"/season/list/all")
}

func getJSON[T any](ctx context.Context, c *PulseClient, reqURL string) (T, error) {
	var result T

	if c.cache != nil {
		body, ok, err := c.cache.Get(ctx, reqURL)
		if err != nil {
			c.logger.Warn().Err(err).Str("url", reqURL).Msg("response cache read failed")
		} else if ok {
			if err := json.Unmarshal(body, &result); err == nil {
				return result, nil
			}
			c.logger.Warn().Str("url", reqURL).Msg("discarding undecodable cached response")
		}
	}

	body, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("decode %s: %w", reqURL, err)
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, reqURL, body); err != nil {
			c.logger.Warn().Err(err).Str("url", reqURL).Msg("response cache write failed")
		}
	}
	return result, nil
}

func (c *PulseClient) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(reqURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("get %s: %w", reqURL, err)
		}
	} else {
		if err := c.client.Do(req, resp); err != nil {
			return nil, fmt.Errorf("get %s: %w", reqURL, err)
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("get %s: API error: %d", reqURL, resp.StatusCode())
	}

	// resp.Body is pooled, copy before release
	return append([]byte(nil), resp.Body()...), nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
