package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/tonebot/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

// commandTimeout bounds the work behind a single slash command
const commandTimeout = 30 * time.Second

// Bot represents the Discord bot instance
type Bot struct {
	session  *discordgo.Session
	sessions session.Service
	config   *Config

	mu         sync.RWMutex
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	order      []string

	closeOnce sync.Once
	closeErr  error
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the gateway session, shared with the voice backend
	Session *discordgo.Session

	// Application ID for the bot; falls back to the session user
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// WipeCommands deletes every command registered in GuildID before registering ours
	WipeCommands bool

	// MOTD is shown as the bot's listening activity
	MOTD string

	// Voice session service
	SessionService session.Service
}

// NewSession creates a gateway session that tracks guild voice states
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates
	s.StateEnabled = true
	s.State.TrackVoice = true

	return s, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("discord session cannot be nil")
	}

	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.WipeCommands && cfg.GuildID == "" {
		return nil, errors.New("wiping commands requires a guild ID")
	}

	bot := &Bot{
		session:    cfg.Session,
		sessions:   cfg.SessionService,
		config:     cfg,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
	}

	cfg.Session.AddHandler(bot.handleReady)
	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the gateway connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if b.config.WipeCommands {
		if err := b.wipeCommands(); err != nil {
			return err
		}
	}

	lookup := stateVoiceChannel(b.session.State)
	handlers := []CommandHandler{
		NewToneCommand(b.sessions, lookup),
		NewJoinCommand(b.sessions, lookup),
		NewDisconnectCommand(b.sessions),
		NewPlayingCommand(b.sessions),
	}
	handlers = append(handlers, NewHelpCommand(handlers))

	for _, cmd := range handlers {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Close removes development commands and closes the gateway connection.
// It is safe to call more than once.
func (b *Bot) Close() error {
	b.closeOnce.Do(func() {
		if b.config.GuildID != "" {
			b.deleteCommands()
		}
		b.closeErr = b.session.Close()
	})
	return b.closeErr
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.appID()

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := b.config.GuildID
	if guildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.mu.Lock()
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.order = append(b.order, cmd.GetName())
	b.mu.Unlock()
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// wipeCommands clears whatever an earlier run left in the development guild
func (b *Bot) wipeCommands() error {
	appID := b.appID()

	existing, err := b.session.ApplicationCommands(appID, b.config.GuildID)
	if err != nil {
		return fmt.Errorf("failed to list commands for guild %s: %w", b.config.GuildID, err)
	}

	for _, cmd := range existing {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmd.ID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmd.Name, cmd.ID, err)
			continue
		}
		log.Printf("Wiped command %s (ID: %s)", cmd.Name, cmd.ID)
	}

	return nil
}

func (b *Bot) deleteCommands() {
	appID := b.appID()

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, cmdName := range b.order {
		cmdID := b.commandIDs[cmdName]
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}
}

// handleReady sets the listening activity once the gateway is identified
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("Logged in as %s#%s in %d guilds", r.User.Username, r.User.Discriminator, len(r.Guilds))

	if b.config.MOTD == "" {
		return
	}
	if err := s.UpdateListeningStatus(b.config.MOTD); err != nil {
		log.Printf("Failed to set activity: %v", err)
	}
}

// handleInteraction dispatches slash commands
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name

	b.mu.RLock()
	h, ok := b.commands[name]
	b.mu.RUnlock()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := h.Handle(ctx, s, i); err != nil {
		log.Printf("Error handling command %s: %v", name, err)
	}
}
