// Package voice is the boundary between session orchestration and the Discord voice gateway.
package voice

//go:generate mockgen -package=mocks -destination=mocks/mock_backend.go github.com/KirkDiggler/tonebot/internal/voice Backend,Connection

import (
	"context"

	"github.com/KirkDiggler/tonebot/internal/audio"
)

// Backend joins, looks up and removes voice connections per guild.
// Implementations synchronise per connection; callers serialise per guild.
type Backend interface {
	// Join connects to channelID in guildID and returns the established connection
	Join(ctx context.Context, guildID, channelID string) (Connection, error)

	// Remove disconnects the guild's connection; an absent guild is not an error
	Remove(ctx context.Context, guildID string) error

	// Get returns the guild's established connection, if any
	Get(guildID string) (Connection, bool)
}

// Connection is a handle to one established voice connection
type Connection interface {
	GuildID() string
	ChannelID() string

	// Play starts sending src in the background and returns once the source is open
	Play(ctx context.Context, src audio.Source) error

	// Active reports whether the connection is producing audio right now
	Active(ctx context.Context) (bool, error)
}
