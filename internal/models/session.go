package models

import (
	"time"
)

// SessionState represents where a voice session is in its lifecycle
type SessionState string

const (
	// SessionStateConnecting indicates a backend join is in flight
	SessionStateConnecting SessionState = "connecting"

	// SessionStateConnected indicates the bot is in the voice channel but silent
	SessionStateConnected SessionState = "connected"

	// SessionStatePlaying indicates audio is being sent and a teardown is scheduled
	SessionStatePlaying SessionState = "playing"

	// SessionStateDisconnecting indicates the backend removal has been requested
	SessionStateDisconnecting SessionState = "disconnecting"

	// SessionStateTerminated is absorbing; the registry drops the session on reaching it
	SessionStateTerminated SessionState = "terminated"
)

var sessionTransitions = map[SessionState][]SessionState{
	SessionStateConnecting:    {SessionStateConnected, SessionStateTerminated},
	SessionStateConnected:     {SessionStatePlaying, SessionStateDisconnecting},
	SessionStatePlaying:       {SessionStateDisconnecting},
	SessionStateDisconnecting: {SessionStateTerminated},
}

// CanTransitionTo reports whether next is a legal successor of s
func (s SessionState) CanTransitionTo(next SessionState) bool {
	for _, allowed := range sessionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsLive reports whether the session still counts against the one-per-guild limit
func (s SessionState) IsLive() bool {
	return s != SessionStateTerminated
}

// Session is the bot's voice presence in one guild.
// Values handed out by the registry are copies; mutating them has no effect.
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// GuildID is the Discord guild this session belongs to
	GuildID string

	// ChannelID is the voice channel currently joined
	ChannelID string

	// State is the current lifecycle state
	State SessionState

	// JoinedAt is when the backend join succeeded
	JoinedAt time.Time

	// AutoDisconnectAt is set only while a scheduled teardown is pending
	AutoDisconnectAt *time.Time

	// Source is the name of the audio source while playing
	Source string
}

// Clone returns a deep copy safe to hand outside the registry
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.AutoDisconnectAt != nil {
		at := *s.AutoDisconnectAt
		c.AutoDisconnectAt = &at
	}
	return &c
}
