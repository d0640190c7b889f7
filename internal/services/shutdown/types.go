package shutdown

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/tonebot/internal/common/clock"
	"github.com/KirkDiggler/tonebot/internal/repositories/stats"
	"github.com/KirkDiggler/tonebot/internal/services/session"
)

// DefaultTimeout bounds each step of the cascade
const DefaultTimeout = 5 * time.Second

// Config holds configuration for the coordinator
type Config struct {
	Sessions session.Service
	Shard    ShardCloser
	Stats    stats.Repository

	// Timeout defaults to DefaultTimeout
	Timeout time.Duration

	Clock  clock.Clock
	Logger *slog.Logger
}
