package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/tonebot/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

// ToneCommand handles /tone: join the caller's channel, play, and leave on a timer
type ToneCommand struct {
	BaseCommand
	sessions session.Service
	lookup   voiceChannelFunc
}

// NewToneCommand creates a new tone command handler
func NewToneCommand(sessions session.Service, lookup voiceChannelFunc) *ToneCommand {
	return &ToneCommand{
		BaseCommand: BaseCommand{
			Name:        "tone",
			Description: "Join your voice channel and play a short test tone",
		},
		sessions: sessions,
		lookup:   lookup,
	}
}

// Handle acknowledges immediately; joining and starting audio can outlast
// the interaction deadline.
func (c *ToneCommand) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := RespondWithEphemeralMessage(s, i, "Joining your voice channel and playing a short test..."); err != nil {
		return err
	}
	return FollowupEphemeral(s, i, c.run(ctx, i.GuildID, interactionUserID(i)))
}

func (c *ToneCommand) run(ctx context.Context, guildID, userID string) string {
	if guildID == "" {
		return "Run this in a server while you are in a voice channel."
	}

	channelID, err := c.lookup(guildID, userID)
	if err != nil {
		if errors.Is(err, session.ErrNotInVoiceChannel) {
			return "Join a voice channel first, then run /tone."
		}
		log.Printf("Error reading voice state for %s in guild %s: %v", userID, guildID, err)
		return describeError(err)
	}

	joined, err := c.sessions.Join(ctx, &session.JoinInput{
		GuildID:   guildID,
		ChannelID: channelID,
	})
	if err != nil {
		log.Printf("Error joining voice channel %s in guild %s: %v", channelID, guildID, err)
		return describeError(err)
	}

	played, err := c.sessions.Play(ctx, &session.PlayInput{GuildID: guildID})
	if err != nil {
		log.Printf("Error starting playback in guild %s: %v", guildID, err)

		// leave if we couldn't start audio, unless someone else brought us here
		if !joined.AlreadyJoined {
			_, rmErr := c.sessions.Remove(ctx, &session.RemoveInput{
				GuildID:   guildID,
				SessionID: joined.Session.ID,
			})
			if rmErr != nil {
				log.Printf("Error leaving guild %s after failed playback: %v", guildID, rmErr)
			}
		}
		return describeError(err)
	}

	return fmt.Sprintf("🔊 Playing! I will disconnect %s.", relativeTime(played.Session.AutoDisconnectAt))
}

// JoinCommand handles /join: connect without playing anything
type JoinCommand struct {
	BaseCommand
	sessions session.Service
	lookup   voiceChannelFunc
}

// NewJoinCommand creates a new join command handler
func NewJoinCommand(sessions session.Service, lookup voiceChannelFunc) *JoinCommand {
	return &JoinCommand{
		BaseCommand: BaseCommand{
			Name:        "join",
			Description: "Join your voice channel without playing audio",
		},
		sessions: sessions,
		lookup:   lookup,
	}
}

// Handle processes a Discord interaction for the join command
func (c *JoinCommand) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := RespondWithEphemeralMessage(s, i, "Joining your voice channel..."); err != nil {
		return err
	}
	return FollowupEphemeral(s, i, c.run(ctx, i.GuildID, interactionUserID(i)))
}

func (c *JoinCommand) run(ctx context.Context, guildID, userID string) string {
	if guildID == "" {
		return "Run this in a server while you are in a voice channel."
	}

	channelID, err := c.lookup(guildID, userID)
	if err != nil {
		if errors.Is(err, session.ErrNotInVoiceChannel) {
			return "Join a voice channel first, then run /join."
		}
		log.Printf("Error reading voice state for %s in guild %s: %v", userID, guildID, err)
		return describeError(err)
	}

	out, err := c.sessions.Join(ctx, &session.JoinInput{
		GuildID:   guildID,
		ChannelID: channelID,
	})
	if err != nil {
		log.Printf("Error joining voice channel %s in guild %s: %v", channelID, guildID, err)
		return describeError(err)
	}

	if out.AlreadyJoined {
		return fmt.Sprintf("Already in <#%s>.", channelID)
	}
	return fmt.Sprintf("Joined <#%s>. Use /disconnect when you are done.", channelID)
}

// DisconnectCommand handles /disconnect
type DisconnectCommand struct {
	BaseCommand
	sessions session.Service
}

// NewDisconnectCommand creates a new disconnect command handler
func NewDisconnectCommand(sessions session.Service) *DisconnectCommand {
	return &DisconnectCommand{
		BaseCommand: BaseCommand{
			Name:        "disconnect",
			Description: "Leave the voice channel in this server",
		},
		sessions: sessions,
	}
}

// Handle processes a Discord interaction for the disconnect command
func (c *DisconnectCommand) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := RespondWithEphemeralMessage(s, i, "Disconnecting..."); err != nil {
		return err
	}
	return FollowupEphemeral(s, i, c.run(ctx, i.GuildID))
}

func (c *DisconnectCommand) run(ctx context.Context, guildID string) string {
	if guildID == "" {
		return "Run this in a server."
	}

	out, err := c.sessions.Remove(ctx, &session.RemoveInput{GuildID: guildID})
	if err != nil {
		log.Printf("Error disconnecting in guild %s: %v", guildID, err)
		if out != nil && out.Removed {
			return "Disconnected, though Discord reported a problem closing the connection."
		}
		return describeError(err)
	}

	if !out.Removed {
		return "I'm not in a voice channel in this server."
	}
	return "Disconnected."
}

// PlayingCommand handles /playing: show this guild's session
type PlayingCommand struct {
	BaseCommand
	sessions session.Service
}

// NewPlayingCommand creates a new playing command handler
func NewPlayingCommand(sessions session.Service) *PlayingCommand {
	return &PlayingCommand{
		BaseCommand: BaseCommand{
			Name:        "playing",
			Description: "Show the voice session in this server",
		},
		sessions: sessions,
	}
}

// Handle processes a Discord interaction for the playing command
func (c *PlayingCommand) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return RespondWithEphemeralEmbed(s, i, c.run(ctx, i.GuildID))
}

func (c *PlayingCommand) run(ctx context.Context, guildID string) *discordgo.MessageEmbed {
	if guildID == "" {
		return renderNoSession()
	}

	out, err := c.sessions.GetSession(ctx, &session.GetSessionInput{GuildID: guildID})
	if err != nil {
		if !errors.Is(err, session.ErrSessionNotFound) {
			log.Printf("Error getting session for guild %s: %v", guildID, err)
		}
		return renderNoSession()
	}

	activity := "unknown"
	active, err := c.sessions.IsActive(ctx, &session.IsActiveInput{GuildID: guildID})
	switch {
	case err != nil:
		log.Printf("Error querying activity for guild %s: %v", guildID, err)
	case active.Active:
		activity = "yes"
	default:
		activity = "no"
	}

	return renderSession(out.Session, activity)
}

// HelpCommand handles /help
type HelpCommand struct {
	BaseCommand
	commands []CommandHandler
}

// NewHelpCommand lists cmds followed by itself
func NewHelpCommand(cmds []CommandHandler) *HelpCommand {
	h := &HelpCommand{
		BaseCommand: BaseCommand{
			Name:        "help",
			Description: "List the available commands",
		},
	}
	h.commands = append(append([]CommandHandler{}, cmds...), h)
	return h
}

// Handle processes a Discord interaction for the help command
func (c *HelpCommand) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return RespondWithEphemeralEmbed(s, i, renderHelp(c.commands))
}
