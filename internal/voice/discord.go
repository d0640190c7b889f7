package voice

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/tonebot/internal/audio"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

// Link is the part of a gateway voice connection the backend drives
type Link interface {
	Speaking(speaking bool) error
	Disconnect() error
	Ready() bool
	Opus() chan<- []byte
}

// Dialer opens a Link; the production dialer wraps discordgo.Session.ChannelVoiceJoin
type Dialer func(ctx context.Context, guildID, channelID string) (Link, error)

// Streamer pumps PCM from r into Opus packets on out
type Streamer interface {
	Stream(ctx context.Context, r io.Reader, out chan<- []byte) error
}

// DiscordConfig holds configuration for the discordgo-backed Backend
type DiscordConfig struct {
	// Dial opens gateway voice connections
	Dial Dialer

	// NewStreamer defaults to an Opus encoder
	NewStreamer func() (Streamer, error)

	// JoinLimiter throttles voice state updates sent to the gateway; nil means unlimited
	JoinLimiter *rate.Limiter

	Logger *slog.Logger
}

// DiscordBackend implements Backend on the Discord voice gateway
type DiscordBackend struct {
	dial        Dialer
	newStreamer func() (Streamer, error)
	limiter     *rate.Limiter
	logger      *slog.Logger

	mu    sync.RWMutex
	conns map[string]*discordConnection
}

// NewDiscordBackend creates a new voice backend
func NewDiscordBackend(cfg *DiscordConfig) (*DiscordBackend, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Dial == nil {
		return nil, ErrNilDialer
	}

	newStreamer := cfg.NewStreamer
	if newStreamer == nil {
		newStreamer = func() (Streamer, error) { return audio.NewEncoder() }
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &DiscordBackend{
		dial:        cfg.Dial,
		newStreamer: newStreamer,
		limiter:     cfg.JoinLimiter,
		logger:      logger,
		conns:       make(map[string]*discordConnection),
	}, nil
}

// SessionDialer dials through a live discordgo session
func SessionDialer(s *discordgo.Session) Dialer {
	return func(ctx context.Context, guildID, channelID string) (Link, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s.RLock()
		ready := s.DataReady
		s.RUnlock()
		if !ready {
			return nil, ErrNotReady
		}

		vc, err := s.ChannelVoiceJoin(guildID, channelID, false, true)
		if err != nil {
			if vc != nil {
				_ = vc.Disconnect()
			}
			return nil, err
		}
		return &gatewayLink{vc: vc}, nil
	}
}

// Join connects to the channel, replacing any stale connection for the guild
func (b *DiscordBackend) Join(ctx context.Context, guildID, channelID string) (Connection, error) {
	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("join throttled: %w", err)
		}
	}

	link, err := b.dial(ctx, guildID, channelID)
	if err != nil {
		return nil, err
	}

	conn := newDiscordConnection(guildID, channelID, link, b.newStreamer, b.logger)

	b.mu.Lock()
	stale := b.conns[guildID]
	b.conns[guildID] = conn
	b.mu.Unlock()

	if stale != nil {
		stale.shutdown()
	}

	return conn, nil
}

// Remove disconnects the guild's connection
func (b *DiscordBackend) Remove(ctx context.Context, guildID string) error {
	b.mu.Lock()
	conn, ok := b.conns[guildID]
	delete(b.conns, guildID)
	b.mu.Unlock()

	if !ok {
		return nil
	}

	if err := conn.close(); err != nil {
		return fmt.Errorf("failed to disconnect guild %s: %w", guildID, err)
	}
	return nil
}

// Get returns the guild's connection
func (b *DiscordBackend) Get(guildID string) (Connection, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	conn, ok := b.conns[guildID]
	if !ok {
		return nil, false
	}
	return conn, true
}

type gatewayLink struct {
	vc *discordgo.VoiceConnection
}

func (l *gatewayLink) Speaking(speaking bool) error { return l.vc.Speaking(speaking) }
func (l *gatewayLink) Disconnect() error            { return l.vc.Disconnect() }
func (l *gatewayLink) Opus() chan<- []byte          { return l.vc.OpusSend }

func (l *gatewayLink) Ready() bool {
	l.vc.RLock()
	defer l.vc.RUnlock()
	return l.vc.Ready
}
