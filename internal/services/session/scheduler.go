package session

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/tonebot/internal/common/clock"
)

// scheduleAutoDisconnect arms a timer that removes exactly this session.
// Stopping the timer is only an optimisation: a late fire finds the session
// gone (or replaced) and Remove turns it into a no-op.
func (s *service) scheduleAutoDisconnect(guildID, sessionID string) clock.Timer {
	return s.clock.AfterFunc(s.autoDisconnectAfter, func() {
		ctx, cancel := context.WithTimeout(context.Background(), autoDisconnectTimeout)
		defer cancel()

		out, err := s.Remove(ctx, &RemoveInput{
			GuildID:   guildID,
			SessionID: sessionID,
		})
		if err != nil {
			s.logger.Error("auto-disconnect failed",
				slog.String("guild_id", guildID),
				slog.String("session_id", sessionID),
				slog.Any("error", err))
			return
		}
		if !out.Removed {
			s.logger.Debug("auto-disconnect found nothing to remove",
				slog.String("guild_id", guildID),
				slog.String("session_id", sessionID))
		}
	})
}
