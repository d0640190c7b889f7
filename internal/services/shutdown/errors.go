package shutdown

// ShutdownError is a shutdown coordinator error
type ShutdownError string

func (e ShutdownError) Error() string {
	return string(e)
}

const (
	ErrStepTimedOut ShutdownError = "shutdown step timed out"

	ErrNilConfig          ShutdownError = "config cannot be nil"
	ErrNilSessionService  ShutdownError = "session service cannot be nil"
	ErrNilShardCloser     ShutdownError = "shard closer cannot be nil"
	ErrNilStatsRepository ShutdownError = "stats repository cannot be nil"
	ErrNilClock           ShutdownError = "clock cannot be nil"
)
