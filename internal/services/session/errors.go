package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrBackendUnavailable  SessionError = "voice backend is unavailable"
	ErrNotInVoiceChannel   SessionError = "user is not in a voice channel"
	ErrJoinFailed          SessionError = "failed to join voice channel"
	ErrAlreadyConnected    SessionError = "already connected to another voice channel in this guild"
	ErrSessionNotFound     SessionError = "no voice session for this guild"
	ErrInvalidSessionState SessionError = "invalid session state"
	ErrSourceUnavailable   SessionError = "audio source unavailable"
	ErrShuttingDown        SessionError = "voice sessions are shutting down"
	ErrInvalidInput        SessionError = "missing guild or channel ID"
	ErrNilConfig           SessionError = "config cannot be nil"
	ErrNilBackend          SessionError = "voice backend cannot be nil"
	ErrNilClock            SessionError = "clock cannot be nil"
	ErrNilUUIDGenerator    SessionError = "UUID generator cannot be nil"
)
