package constants

import "time"

const (
	// SummaryBatchSize is the server-imposed id limit per summary request.
	SummaryBatchSize = 50

	// MaxSummaryDepthDays is the largest look-back window the summary
	// endpoint serves for batched ids. Beyond it requests go out one id
	// at a time.
	MaxSummaryDepthDays = 120

	DefaultRatingStart = 10000
	DefaultSummarySort = "rating_last"
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	CacheJanitorInterval = 10 * time.Minute
	ShutdownTimeout      = 5 * time.Second
)
