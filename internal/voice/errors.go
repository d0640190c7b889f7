package voice

// BackendError is a custom error type for voice backend errors
type BackendError string

// Error implements the error interface
func (e BackendError) Error() string {
	return string(e)
}

const (
	ErrNotReady         BackendError = "voice gateway is not ready"
	ErrConnectionClosed BackendError = "voice connection is closed"
	ErrAlreadyPlaying   BackendError = "voice connection is already playing"
	ErrNilConfig        BackendError = "config cannot be nil"
	ErrNilDialer        BackendError = "voice dialer cannot be nil"
)
