package stats

// RepositoryError is a stats repository error
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      RepositoryError = "config cannot be nil"
	ErrNilRedisClient RepositoryError = "redis client cannot be nil"
	ErrNegativeCount  RepositoryError = "active count cannot be negative"
	ErrCorruptSample  RepositoryError = "stored sample is corrupt"
)
