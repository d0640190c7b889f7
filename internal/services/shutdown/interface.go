package shutdown

//go:generate mockgen -package=mocks -destination=mocks/mock_shard_closer.go github.com/KirkDiggler/tonebot/internal/services/shutdown ShardCloser

// ShardCloser closes the gateway connection
type ShardCloser interface {
	Close() error
}
