package monitor

// MonitorError is a monitor error
type MonitorError string

func (e MonitorError) Error() string {
	return string(e)
}

const (
	ErrAlreadyRunning MonitorError = "monitor already running"

	ErrNilConfig          MonitorError = "config cannot be nil"
	ErrNilSessionService  MonitorError = "session service cannot be nil"
	ErrNilStatsRepository MonitorError = "stats repository cannot be nil"
	ErrNilShutdowner      MonitorError = "shutdowner cannot be nil"
	ErrNilClock           MonitorError = "clock cannot be nil"
)
