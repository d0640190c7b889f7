package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tonebot/internal/repositories/stats Repository

import (
	"context"
)

// Repository records bot telemetry
type Repository interface {
	// SetActiveCount overwrites the number of voice sessions producing audio
	SetActiveCount(ctx context.Context, input *SetActiveCountInput) error

	// GetActiveCount returns the last recorded sample
	GetActiveCount(ctx context.Context) (*GetActiveCountOutput, error)
}
