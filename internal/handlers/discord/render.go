package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/tonebot/internal/models"
	"github.com/KirkDiggler/tonebot/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

const (
	colorGreen = 0x00ff00
	colorGrey  = 0x95a5a6
)

// describeError turns a service error into something a user can act on
func describeError(err error) string {
	switch {
	case errors.Is(err, session.ErrNotInVoiceChannel):
		return "Join a voice channel first."
	case errors.Is(err, session.ErrAlreadyConnected):
		return "I'm already in another voice channel in this server. Use /disconnect first."
	case errors.Is(err, session.ErrBackendUnavailable):
		return "Voice isn't available yet, try again in a moment."
	case errors.Is(err, session.ErrJoinFailed):
		return fmt.Sprintf("Couldn't join your voice channel (%v).", err)
	case errors.Is(err, session.ErrSessionNotFound):
		return "I'm not in a voice channel in this server."
	case errors.Is(err, session.ErrInvalidSessionState):
		return "I'm busy in this server right now, try again once the current test ends."
	case errors.Is(err, session.ErrSourceUnavailable):
		return fmt.Sprintf("Couldn't start the test audio (%v).", err)
	case errors.Is(err, session.ErrShuttingDown):
		return "I'm restarting, try again shortly."
	case errors.Is(err, context.DeadlineExceeded):
		return "That took too long, try again."
	default:
		return fmt.Sprintf("Something went wrong: %v", err)
	}
}

// relativeTime renders t as a Discord relative timestamp
func relativeTime(t *time.Time) string {
	if t == nil {
		return "shortly"
	}
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}

func renderNoSession() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Not connected",
		Description: "I'm not in a voice channel in this server. Use /tone or /join.",
		Color:       colorGrey,
	}
}

// renderSession shows a session snapshot; activity is "yes", "no" or "unknown"
func renderSession(sess *models.Session, activity string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Channel",
			Value:  fmt.Sprintf("<#%s>", sess.ChannelID),
			Inline: true,
		},
		{
			Name:   "State",
			Value:  string(sess.State),
			Inline: true,
		},
		{
			Name:   "Sending audio",
			Value:  activity,
			Inline: true,
		},
	}

	if sess.Source != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Source",
			Value:  sess.Source,
			Inline: true,
		})
	}

	if sess.AutoDisconnectAt != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Leaving",
			Value:  relativeTime(sess.AutoDisconnectAt),
			Inline: true,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:  "Voice session",
		Color:  colorGreen,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: "session " + sess.ID},
	}
	if !sess.JoinedAt.IsZero() {
		embed.Timestamp = sess.JoinedAt.Format(time.RFC3339)
	}
	return embed
}

func renderHelp(cmds []CommandHandler) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(cmds))
	for _, cmd := range cmds {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "/" + cmd.GetName(),
			Value: cmd.GetDescription(),
		})
	}

	return &discordgo.MessageEmbed{
		Title:  "Commands",
		Color:  colorGreen,
		Fields: fields,
	}
}
