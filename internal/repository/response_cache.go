package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"sc2pulse-reports/internal/config"
	"sc2pulse-reports/internal/constants"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ResponseCache stores raw API response bodies keyed by request URL, with
// a TTL. It sits transparently under the API client; correctness never
// depends on it.
type ResponseCache struct {
	db     *sql.DB
	ttl    time.Duration
	logger zerolog.Logger
}

func NewResponseCache(db *sql.DB, cfg *config.Config, logger zerolog.Logger) *ResponseCache {
	return &ResponseCache{db: db, ttl: cfg.CacheTTL, logger: logger}
}

// Get returns the cached body for url, reporting a miss for absent or
// stale entries.
func (r *ResponseCache) Get(ctx context.Context, url string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	var body []byte
	var fetchedAt time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT body, fetched_at FROM response_cache WHERE url = ?`, url,
	).Scan(&body, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read response cache: %w", err)
	}

	if time.Since(fetchedAt) > r.ttl {
		return nil, false, nil
	}
	return body, true, nil
}

// Put stores or refreshes the cached body for url.
func (r *ResponseCache) Put(ctx context.Context, url string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	id, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate nanoid: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO response_cache (id, url, body, fetched_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`,
		id, url, body, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to write response cache: %w", err)
	}
	return nil
}

// PurgeExpired removes entries older than the TTL and reports how many
// were deleted.
func (r *ResponseCache) PurgeExpired(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM response_cache WHERE fetched_at < ?`, time.Now().Add(-r.ttl))
	if err != nil {
		return 0, fmt.Errorf("failed to purge response cache: %w", err)
	}
	return res.RowsAffected()
}

// StartJanitor purges stale entries in the background until ctx is
// cancelled.
func (r *ResponseCache) StartJanitor(ctx context.Context) {
	g := new(errgroup.Group)
	g.Go(func() error {
		ticker := time.NewTicker(constants.CacheJanitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				purged, err := r.PurgeExpired(context.Background())
				if err != nil {
					r.logger.Warn().Err(err).Msg("response cache purge failed")
					continue
				}
				if purged > 0 {
					r.logger.Debug().Int64("purged", purged).Msg("response cache purged")
				}
			}
		}
	})

	go func() {
		if err := g.Wait(); err != nil {
			r.logger.Error().Err(err).Msg("cache janitor failed")
		}
	}()
}
