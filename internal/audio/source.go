// Package audio turns a configured test resource into Opus frames for a voice connection.
//
// Every Source yields raw 48kHz stereo signed 16-bit little-endian PCM. Which
// Source the bot uses is decided once from configuration; the playback path
// is the same for all of them.
package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	Channels   = 2
	SampleRate = 48000
	FrameSize  = 960 // 20ms at 48kHz

	frameBytes = FrameSize * Channels * 2
)

// Kind names a Source implementation
type Kind string

const (
	// KindFFmpeg hands the URL straight to an external ffmpeg process
	KindFFmpeg Kind = "ffmpeg"

	// KindHTTP fetches the URL itself and pipes the body through ffmpeg
	KindHTTP Kind = "http"

	// KindSilence produces zero samples; used to test joining without audio
	KindSilence Kind = "silence"
)

var (
	ErrUnknownKind = errors.New("unknown audio source kind")
	ErrMissingURL  = errors.New("audio source URL cannot be empty")
)

// Source acquires a PCM stream for one playback
type Source interface {
	// Name identifies the source in logs and session snapshots
	Name() string

	// Open starts producing PCM; the caller must Close the reader
	Open(ctx context.Context) (io.ReadCloser, error)
}

// Config selects and parameterises a Source
type Config struct {
	Kind Kind

	// URL of the audio resource (ffmpeg and http kinds)
	URL string

	// FFmpegPath defaults to "ffmpeg" on PATH
	FFmpegPath string

	// HTTPClient defaults to a client with a 30s timeout
	HTTPClient *http.Client

	// SilenceDuration defaults to 5s
	SilenceDuration time.Duration
}

// NewSource builds the Source named by cfg.Kind
func NewSource(cfg *Config) (Source, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	ffmpegPath := cfg.FFmpegPath
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}

	switch cfg.Kind {
	case KindFFmpeg:
		if cfg.URL == "" {
			return nil, ErrMissingURL
		}
		return &FFmpegSource{URL: cfg.URL, Path: ffmpegPath}, nil
	case KindHTTP:
		if cfg.URL == "" {
			return nil, ErrMissingURL
		}
		client := cfg.HTTPClient
		if client == nil {
			client = &http.Client{Timeout: 30 * time.Second}
		}
		return &HTTPSource{URL: cfg.URL, FFmpegPath: ffmpegPath, Client: client}, nil
	case KindSilence:
		d := cfg.SilenceDuration
		if d <= 0 {
			d = 5 * time.Second
		}
		return &SilenceSource{Duration: d}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
}
