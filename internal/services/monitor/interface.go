package monitor

//go:generate mockgen -package=mocks -destination=mocks/mock_shutdowner.go github.com/KirkDiggler/tonebot/internal/services/monitor Shutdowner

import (
	"context"
)

// Monitor samples voice activity on a fixed period until its context ends
type Monitor interface {
	// Run blocks until ctx is done, then runs the shutdown cascade and returns its error
	Run(ctx context.Context) error

	// Tick takes one activity sample and records it
	Tick(ctx context.Context) (*TickOutput, error)
}

// Shutdowner is the cascade Run triggers on cancellation
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}
