package shutdown

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/tonebot/internal/common/clock"
	"github.com/KirkDiggler/tonebot/internal/repositories/stats"
	"github.com/KirkDiggler/tonebot/internal/services/session"
)

// Coordinator tears the process down in order: voice sessions, then the
// gateway shard, then the telemetry sink. It runs at most once.
type Coordinator struct {
	sessions session.Service
	shard    ShardCloser
	stats    stats.Repository
	timeout  time.Duration
	clock    clock.Clock
	logger   *slog.Logger

	once sync.Once
	err  error
}

// New creates a new shutdown coordinator
func New(cfg *Config) (*Coordinator, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Sessions == nil {
		return nil, ErrNilSessionService
	}
	if cfg.Shard == nil {
		return nil, ErrNilShardCloser
	}
	if cfg.Stats == nil {
		return nil, ErrNilStatsRepository
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Coordinator{
		sessions: cfg.Sessions,
		shard:    cfg.Shard,
		stats:    cfg.Stats,
		timeout:  timeout,
		clock:    cfg.Clock,
		logger:   logger.With(slog.String("component", "shutdown")),
	}, nil
}

// Shutdown runs the cascade. Every step runs even when an earlier one
// failed; their errors are joined. Later calls return the first result.
func (c *Coordinator) Shutdown(ctx context.Context) error {
	c.once.Do(func() {
		c.err = c.run(ctx)
	})
	return c.err
}

func (c *Coordinator) run(ctx context.Context) error {
	// the caller's ctx is usually the one whose cancellation triggered us
	ctx = context.WithoutCancel(ctx)

	c.logger.Info("shutdown started", slog.Duration("step_timeout", c.timeout))

	var errs []error

	err := c.step(ctx, "voice sessions", func(ctx context.Context) error {
		c.sessions.ShutdownAll(ctx)
		return nil
	})
	errs = append(errs, err)

	err = c.step(ctx, "gateway shard", func(context.Context) error {
		return c.shard.Close()
	})
	errs = append(errs, err)

	err = c.step(ctx, "activity stats", func(ctx context.Context) error {
		return c.stats.SetActiveCount(ctx, &stats.SetActiveCountInput{
			Count:      0,
			RecordedAt: c.clock.Now(),
		})
	})
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		return err
	}

	c.logger.Info("shutdown complete")
	return nil
}

// step runs fn under its own timeout and gives up waiting once it expires.
// A step that ignores its context keeps running in the background; the
// process is about to exit anyway.
func (c *Coordinator) step(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- fn(ctx)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = fmt.Errorf("%w: %w", ErrStepTimedOut, ctx.Err())
	}

	if err != nil {
		c.logger.Error("shutdown step failed", slog.String("step", name), slog.Any("error", err))
		return fmt.Errorf("%s: %w", name, err)
	}

	c.logger.Debug("shutdown step done", slog.String("step", name))
	return nil
}
