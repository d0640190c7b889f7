package voice

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/tonebot/internal/audio"
)

type discordConnection struct {
	guildID     string
	channelID   string
	link        Link
	newStreamer func() (Streamer, error)
	logger      *slog.Logger

	// ctx lives as long as the connection; playback is bound to it
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	playing bool
	closed  bool
	done    chan struct{}
}

func newDiscordConnection(guildID, channelID string, link Link, newStreamer func() (Streamer, error), logger *slog.Logger) *discordConnection {
	ctx, cancel := context.WithCancel(context.Background())
	return &discordConnection{
		guildID:     guildID,
		channelID:   channelID,
		link:        link,
		newStreamer: newStreamer,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (c *discordConnection) GuildID() string   { return c.guildID }
func (c *discordConnection) ChannelID() string { return c.channelID }

func (c *discordConnection) Play(ctx context.Context, src audio.Source) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrConnectionClosed
	}
	if c.playing {
		c.mu.Unlock()
		return ErrAlreadyPlaying
	}
	c.playing = true
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	streamer, err := c.newStreamer()
	if err != nil {
		c.finish(done)
		return fmt.Errorf("failed to create streamer: %w", err)
	}

	pcm, err := src.Open(c.ctx)
	if err != nil {
		c.finish(done)
		return fmt.Errorf("failed to open %s source: %w", src.Name(), err)
	}

	go func() {
		defer c.finish(done)
		defer pcm.Close()

		if err := c.link.Speaking(true); err != nil {
			c.logger.Warn("failed to set speaking", slog.String("guild_id", c.guildID), slog.Any("error", err))
		}
		if err := streamer.Stream(c.ctx, pcm, c.link.Opus()); err != nil && c.ctx.Err() == nil {
			c.logger.Error("playback stopped", slog.String("guild_id", c.guildID), slog.String("source", src.Name()), slog.Any("error", err))
		}
		if c.ctx.Err() == nil {
			if err := c.link.Speaking(false); err != nil {
				c.logger.Warn("failed to clear speaking", slog.String("guild_id", c.guildID), slog.Any("error", err))
			}
		}
	}()

	return nil
}

func (c *discordConnection) Active(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	c.mu.Lock()
	closed, playing := c.closed, c.playing
	c.mu.Unlock()

	if closed {
		return false, ErrConnectionClosed
	}
	return playing && c.link.Ready(), nil
}

func (c *discordConnection) finish(done chan struct{}) {
	c.mu.Lock()
	c.playing = false
	c.mu.Unlock()
	close(done)
}

// shutdown stops playback and waits for the stream goroutine to exit
func (c *discordConnection) shutdown() {
	c.mu.Lock()
	c.closed = true
	done := c.done
	c.mu.Unlock()

	c.cancel()
	if done != nil {
		<-done
	}
}

func (c *discordConnection) close() error {
	c.shutdown()
	return c.link.Disconnect()
}
