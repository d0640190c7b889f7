package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/tonebot/internal/audio"
	"github.com/KirkDiggler/tonebot/internal/common/clock"
	"github.com/KirkDiggler/tonebot/internal/common/uuid"
	"github.com/KirkDiggler/tonebot/internal/models"
	"github.com/KirkDiggler/tonebot/internal/voice"
	"golang.org/x/sync/errgroup"
)

// entry is the registry's private record for one guild
type entry struct {
	session *models.Session
	conn    voice.Connection
	timer   clock.Timer
}

// service implements the Service interface
type service struct {
	backend             voice.Backend
	defaultSource       audio.Source
	autoDisconnectAfter time.Duration
	shutdownConcurrency int
	clock               clock.Clock
	uuid                uuid.UUID
	logger              *slog.Logger

	// mu guards sessions and every field of the entries in it; it is never
	// held across a backend call
	mu       sync.RWMutex
	sessions map[string]*entry

	locks    *guildLocks
	draining atomic.Bool
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Backend == nil {
		return nil, ErrNilBackend
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	autoDisconnectAfter := cfg.AutoDisconnectAfter
	if autoDisconnectAfter <= 0 {
		autoDisconnectAfter = DefaultAutoDisconnectAfter
	}

	shutdownConcurrency := cfg.ShutdownConcurrency
	if shutdownConcurrency <= 0 {
		shutdownConcurrency = DefaultShutdownConcurrency
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		backend:             cfg.Backend,
		defaultSource:       cfg.DefaultSource,
		autoDisconnectAfter: autoDisconnectAfter,
		shutdownConcurrency: shutdownConcurrency,
		clock:               cfg.Clock,
		uuid:                cfg.UUIDGenerator,
		logger:              logger.With(slog.String("component", "session")),
		sessions:            make(map[string]*entry),
		locks:               newGuildLocks(),
	}, nil
}

// Join connects the bot to a voice channel.
// A second join for the same channel returns the existing session; a join
// for a different channel while connected fails with ErrAlreadyConnected.
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil || input.GuildID == "" || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}
	if s.draining.Load() {
		return nil, ErrShuttingDown
	}

	release, err := s.locks.acquire(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}
	defer release()

	if existing := s.lookup(input.GuildID); existing != nil {
		s.mu.RLock()
		snapshot := existing.session.Clone()
		s.mu.RUnlock()

		if snapshot.ChannelID != input.ChannelID {
			return nil, ErrAlreadyConnected
		}
		return &JoinOutput{
			Session:       snapshot,
			AlreadyJoined: true,
		}, nil
	}

	e := &entry{
		session: &models.Session{
			ID:        s.uuid.NewUUID(),
			GuildID:   input.GuildID,
			ChannelID: input.ChannelID,
			State:     models.SessionStateConnecting,
		},
	}

	// checked under mu so the insert is either seen by ShutdownAll's
	// snapshot or refused
	s.mu.Lock()
	if s.draining.Load() {
		s.mu.Unlock()
		return nil, ErrShuttingDown
	}
	s.sessions[input.GuildID] = e
	s.mu.Unlock()

	conn, err := s.backend.Join(ctx, input.GuildID, input.ChannelID)
	if err != nil {
		s.terminate(e)

		s.logger.Warn("voice join failed",
			slog.String("guild_id", input.GuildID),
			slog.String("channel_id", input.ChannelID),
			slog.Any("error", err))

		if errors.Is(err, voice.ErrNotReady) {
			return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrJoinFailed, err)
	}

	s.mu.Lock()
	e.conn = conn
	e.session.JoinedAt = s.clock.Now()
	err = s.transition(e, models.SessionStateConnected)
	snapshot := e.session.Clone()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.logger.Info("joined voice channel",
		slog.String("guild_id", input.GuildID),
		slog.String("channel_id", input.ChannelID),
		slog.String("session_id", snapshot.ID))

	return &JoinOutput{
		Session: snapshot,
	}, nil
}

// Play starts audio on a connected session and schedules its removal
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrInvalidInput
	}

	src := input.Source
	if src == nil {
		src = s.defaultSource
	}
	if src == nil {
		return nil, ErrSourceUnavailable
	}

	release, err := s.locks.acquire(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}
	defer release()

	e := s.lookup(input.GuildID)
	if e == nil {
		return nil, ErrSessionNotFound
	}

	s.mu.RLock()
	state, conn := e.session.State, e.conn
	s.mu.RUnlock()

	if !state.CanTransitionTo(models.SessionStatePlaying) {
		return nil, fmt.Errorf("%w: cannot play while %s", ErrInvalidSessionState, state)
	}

	if err := conn.Play(ctx, src); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	deadline := s.clock.Now().Add(s.autoDisconnectAfter)

	s.mu.Lock()
	err = s.transition(e, models.SessionStatePlaying)
	e.session.Source = src.Name()
	e.session.AutoDisconnectAt = &deadline
	e.timer = s.scheduleAutoDisconnect(e.session.GuildID, e.session.ID)
	snapshot := e.session.Clone()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.logger.Info("playback started",
		slog.String("guild_id", input.GuildID),
		slog.String("source", src.Name()),
		slog.Time("auto_disconnect_at", deadline))

	return &PlayOutput{
		Session: snapshot,
	}, nil
}

// Remove disconnects a guild's session.
// Removing an absent session, or a session other than input.SessionID, is a no-op.
func (s *service) Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrInvalidInput
	}

	release, err := s.locks.acquire(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}
	defer release()

	e := s.lookup(input.GuildID)
	if e == nil {
		return &RemoveOutput{Removed: false}, nil
	}

	s.mu.Lock()
	if input.SessionID != "" && e.session.ID != input.SessionID {
		s.mu.Unlock()
		return &RemoveOutput{Removed: false}, nil
	}
	if err := s.transition(e, models.SessionStateDisconnecting); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.session.AutoDisconnectAt = nil
	sessionID := e.session.ID
	s.mu.Unlock()

	backendErr := s.backend.Remove(ctx, input.GuildID)
	s.terminate(e)

	if backendErr != nil {
		s.logger.Error("voice removal failed",
			slog.String("guild_id", input.GuildID),
			slog.String("session_id", sessionID),
			slog.Any("error", backendErr))
		return &RemoveOutput{Removed: true}, fmt.Errorf("failed to remove voice connection: %w", backendErr)
	}

	s.logger.Info("left voice channel",
		slog.String("guild_id", input.GuildID),
		slog.String("session_id", sessionID))

	return &RemoveOutput{Removed: true}, nil
}

// GetSession returns a snapshot without waiting on any guild lock
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[input.GuildID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return &GetSessionOutput{
		Session: e.session.Clone(),
	}, nil
}

// GetAllSessions returns copies of every session ordered by guild
func (s *service) GetAllSessions(ctx context.Context) []*models.Session {
	s.mu.RLock()
	sessions := make([]*models.Session, 0, len(s.sessions))
	for _, e := range s.sessions {
		sessions = append(sessions, e.session.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].GuildID < sessions[j].GuildID
	})
	return sessions
}

// IsActive queries the live connection; a session still connecting is inactive
func (s *service) IsActive(ctx context.Context, input *IsActiveInput) (*IsActiveOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrInvalidInput
	}

	s.mu.RLock()
	var conn voice.Connection
	e, ok := s.sessions[input.GuildID]
	if ok {
		conn = e.conn
	}
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if conn == nil {
		return &IsActiveOutput{Active: false}, nil
	}

	active, err := conn.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity for guild %s: %w", input.GuildID, err)
	}

	return &IsActiveOutput{Active: active}, nil
}

// ShutdownAll removes every session. Individual failures are logged and do
// not stop the remaining removals. New joins are refused from here on.
func (s *service) ShutdownAll(ctx context.Context) {
	s.mu.Lock()
	s.draining.Store(true)
	s.mu.Unlock()

	sessions := s.GetAllSessions(ctx)
	s.logger.Info("shutting down voice sessions", slog.Int("count", len(sessions)))

	g := new(errgroup.Group)
	g.SetLimit(s.shutdownConcurrency)

	for _, sess := range sessions {
		guildID := sess.GuildID
		g.Go(func() error {
			if _, err := s.Remove(ctx, &RemoveInput{GuildID: guildID}); err != nil {
				s.logger.Error("failed to remove session during shutdown",
					slog.String("guild_id", guildID),
					slog.Any("error", err))
			}
			return nil
		})
	}

	_ = g.Wait()
}

func (s *service) lookup(guildID string) *entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[guildID]
}

// transition must be called with s.mu held for writing
func (s *service) transition(e *entry, next models.SessionState) error {
	current := e.session.State
	if !current.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidSessionState, current, next)
	}
	e.session.State = next
	return nil
}

// terminate moves e to its final state and drops it from the map
func (s *service) terminate(e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.transition(e, models.SessionStateTerminated); err != nil {
		s.logger.Warn("unexpected terminate", slog.String("guild_id", e.session.GuildID), slog.Any("error", err))
		e.session.State = models.SessionStateTerminated
	}
	if s.sessions[e.session.GuildID] == e {
		delete(s.sessions, e.session.GuildID)
	}
}
