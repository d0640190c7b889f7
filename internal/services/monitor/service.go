package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/tonebot/internal/common/clock"
	"github.com/KirkDiggler/tonebot/internal/repositories/stats"
	"github.com/KirkDiggler/tonebot/internal/services/session"
)

type service struct {
	sessions   session.Service
	stats      stats.Repository
	shutdowner Shutdowner
	interval   time.Duration
	clock      clock.Clock
	logger     *slog.Logger

	running atomic.Bool
}

// New creates a new monitor
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Sessions == nil {
		return nil, ErrNilSessionService
	}
	if cfg.Stats == nil {
		return nil, ErrNilStatsRepository
	}
	if cfg.Shutdowner == nil {
		return nil, ErrNilShutdowner
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		sessions:   cfg.Sessions,
		stats:      cfg.Stats,
		shutdowner: cfg.Shutdowner,
		interval:   interval,
		clock:      cfg.Clock,
		logger:     logger.With(slog.String("component", "monitor")),
	}, nil
}

// Run samples activity every interval. The first sample is taken one
// interval after start. When ctx is done the shutdown cascade runs on a
// fresh context, since ctx itself is already cancelled.
func (s *service) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("monitor started", slog.Duration("interval", s.interval))

	for {
		select {
		case <-ticker.C:
			// both cases may be ready at once; cancellation wins
			if ctx.Err() != nil {
				continue
			}
			if _, err := s.Tick(ctx); err != nil {
				s.logger.Error("activity sample failed", slog.Any("error", err))
			}
		case <-ctx.Done():
			s.logger.Info("shutdown signal received")
			return s.shutdowner.Shutdown(context.WithoutCancel(ctx))
		}
	}
}

// Tick queries every session once and records the active count
func (s *service) Tick(ctx context.Context) (*TickOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sessions := s.sessions.GetAllSessions(ctx)
	out := &TickOutput{Sessions: len(sessions)}

	for _, sess := range sessions {
		active, err := s.sessions.IsActive(ctx, &session.IsActiveInput{GuildID: sess.GuildID})
		if err != nil {
			// removed between the snapshot and the query
			if errors.Is(err, session.ErrSessionNotFound) {
				continue
			}
			out.Failed++
			s.logger.Warn("activity query failed",
				slog.String("guild_id", sess.GuildID),
				slog.Any("error", err))
			continue
		}
		if active.Active {
			out.Active++
		}
	}

	err := s.stats.SetActiveCount(ctx, &stats.SetActiveCountInput{
		Count:      out.Active,
		RecordedAt: s.clock.Now(),
	})
	if err != nil {
		return out, fmt.Errorf("failed to record activity sample: %w", err)
	}

	s.logger.Debug("activity sampled",
		slog.Int("sessions", out.Sessions),
		slog.Int("active", out.Active),
		slog.Int("failed", out.Failed))

	return out, nil
}
