package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/tonebot/internal/services/session Service

import (
	"context"

	"github.com/KirkDiggler/tonebot/internal/models"
)

// Service is the single source of truth for which guilds hold a voice session
type Service interface {
	// Join connects the bot to a voice channel, or returns the existing session for the same channel
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Play starts audio on a connected session and schedules its automatic teardown
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)

	// Remove disconnects a guild's session; removing nothing succeeds
	Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error)

	// GetSession returns a snapshot of a guild's session
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// GetAllSessions returns a point-in-time snapshot of every session
	GetAllSessions(ctx context.Context) []*models.Session

	// IsActive asks the voice connection whether it is producing audio right now
	IsActive(ctx context.Context, input *IsActiveInput) (*IsActiveOutput, error)

	// ShutdownAll removes every session and refuses new joins
	ShutdownAll(ctx context.Context)
}
