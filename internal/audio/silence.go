package audio

import (
	"context"
	"io"
	"time"
)

// SilenceSource yields Duration worth of zero samples
type SilenceSource struct {
	Duration time.Duration
}

func (s *SilenceSource) Name() string { return string(KindSilence) }

func (s *SilenceSource) Open(ctx context.Context) (io.ReadCloser, error) {
	frames := int64(s.Duration / (20 * time.Millisecond))
	return io.NopCloser(io.LimitReader(zeroReader{}, frames*frameBytes)), nil
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
