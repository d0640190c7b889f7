package monitor

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/tonebot/internal/common/clock"
	"github.com/KirkDiggler/tonebot/internal/repositories/stats"
	"github.com/KirkDiggler/tonebot/internal/services/session"
)

// DefaultInterval is how often activity is sampled
const DefaultInterval = 60 * time.Second

// Config holds configuration for the monitor
type Config struct {
	Sessions   session.Service
	Stats      stats.Repository
	Shutdowner Shutdowner

	// Interval defaults to DefaultInterval
	Interval time.Duration

	Clock  clock.Clock
	Logger *slog.Logger
}

// TickOutput summarises one sample
type TickOutput struct {
	// Sessions is how many sessions were in the snapshot
	Sessions int

	// Active is the count written to the stats repository
	Active int

	// Failed counts sessions whose activity query errored
	Failed int
}
