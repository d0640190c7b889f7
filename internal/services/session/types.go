package session

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/tonebot/internal/audio"
	"github.com/KirkDiggler/tonebot/internal/common/clock"
	"github.com/KirkDiggler/tonebot/internal/common/uuid"
	"github.com/KirkDiggler/tonebot/internal/models"
	"github.com/KirkDiggler/tonebot/internal/voice"
)

const (
	// DefaultAutoDisconnectAfter bounds how long a test playback keeps the bot in a channel
	DefaultAutoDisconnectAfter = 10 * time.Second

	// DefaultShutdownConcurrency bounds parallel removals during ShutdownAll
	DefaultShutdownConcurrency = 8

	autoDisconnectTimeout = 10 * time.Second
)

// Config holds configuration for the session service
type Config struct {
	// Backend performs the actual voice joins and removals
	Backend voice.Backend

	// DefaultSource is played when PlayInput.Source is nil
	DefaultSource audio.Source

	// AutoDisconnectAfter is the playback window; zero means DefaultAutoDisconnectAfter
	AutoDisconnectAfter time.Duration

	// ShutdownConcurrency limits parallel removals; zero means DefaultShutdownConcurrency
	ShutdownConcurrency int

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *slog.Logger
}

// JoinInput contains parameters for joining a voice channel
type JoinInput struct {
	// GuildID is the Discord guild the session belongs to
	GuildID string

	// ChannelID is the voice channel to join
	ChannelID string
}

// JoinOutput contains the result of joining a voice channel
type JoinOutput struct {
	Session *models.Session

	// AlreadyJoined is true when an existing session for the same channel was returned
	AlreadyJoined bool
}

// PlayInput contains parameters for starting playback
type PlayInput struct {
	GuildID string

	// Source overrides the configured default source
	Source audio.Source
}

// PlayOutput contains the session after playback started
type PlayOutput struct {
	Session *models.Session
}

// RemoveInput contains parameters for removing a session
type RemoveInput struct {
	GuildID string

	// SessionID, when set, limits the removal to that exact session
	SessionID string
}

// RemoveOutput contains the result of a removal
type RemoveOutput struct {
	// Removed is false when there was nothing to remove
	Removed bool
}

// GetSessionInput contains parameters for looking up a session
type GetSessionInput struct {
	GuildID string
}

// GetSessionOutput contains a snapshot of the session
type GetSessionOutput struct {
	Session *models.Session
}

// IsActiveInput contains parameters for querying session activity
type IsActiveInput struct {
	GuildID string
}

// IsActiveOutput contains the result of an activity query
type IsActiveOutput struct {
	Active bool
}
