package audio

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"layeh.com/gopus"
)

// Encoder converts PCM frames into Opus packets
type Encoder struct {
	enc     *gopus.Encoder
	pcm     []byte
	samples []int16
}

// NewEncoder creates an Opus encoder tuned for music
func NewEncoder() (*Encoder, error) {
	enc, err := gopus.NewEncoder(SampleRate, Channels, gopus.Audio)
	if err != nil {
		return nil, fmt.Errorf("encoder error: %w", err)
	}
	return &Encoder{
		enc:     enc,
		pcm:     make([]byte, frameBytes),
		samples: make([]int16, FrameSize*Channels),
	}, nil
}

// Stream reads PCM from r until EOF and sends one Opus packet per 20ms frame to out.
// A trailing partial frame is dropped.
func (e *Encoder) Stream(ctx context.Context, r io.Reader, out chan<- []byte) error {
	for {
		if _, err := io.ReadFull(r, e.pcm); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			return fmt.Errorf("read error: %w", err)
		}

		decodePCM(e.pcm, e.samples)

		packet, err := e.enc.Encode(e.samples, FrameSize, frameBytes)
		if err != nil {
			return fmt.Errorf("encode error: %w", err)
		}

		select {
		case out <- packet:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func decodePCM(src []byte, dst []int16) {
	for i := range dst {
		dst[i] = int16(binary.LittleEndian.Uint16(src[i*2 : i*2+2]))
	}
}
