package discord

import (
	"errors"

	"github.com/KirkDiggler/tonebot/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

// voiceChannelFunc resolves the voice channel a user is sitting in
type voiceChannelFunc func(guildID, userID string) (string, error)

// stateVoiceChannel reads the gateway cache. Only the channel ID string
// leaves the lookup; nothing from the cache is held while the caller goes on
// to join or play.
func stateVoiceChannel(state *discordgo.State) voiceChannelFunc {
	return func(guildID, userID string) (string, error) {
		if guildID == "" || userID == "" {
			return "", session.ErrNotInVoiceChannel
		}

		vs, err := state.VoiceState(guildID, userID)
		if err != nil {
			if errors.Is(err, discordgo.ErrStateNotFound) {
				return "", session.ErrNotInVoiceChannel
			}
			return "", err
		}

		channelID := vs.ChannelID
		if channelID == "" {
			return "", session.ErrNotInVoiceChannel
		}
		return channelID, nil
	}
}
