package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"strconv"
)

// FFmpegSource lets ffmpeg fetch and decode the URL
type FFmpegSource struct {
	URL  string
	Path string
}

func (s *FFmpegSource) Name() string { return string(KindFFmpeg) }

func (s *FFmpegSource) Open(ctx context.Context) (io.ReadCloser, error) {
	cmd := exec.CommandContext(ctx, s.Path, ffmpegArgs(s.URL, true)...)
	return startDecoder(cmd, nil)
}

// HTTPSource fetches the resource itself and feeds the body to ffmpeg on stdin
type HTTPSource struct {
	URL        string
	FFmpegPath string
	Client     *http.Client
}

func (s *HTTPSource) Name() string { return string(KindHTTP) }

func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audio: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch audio: unexpected status %s", resp.Status)
	}

	cmd := exec.CommandContext(ctx, s.FFmpegPath, ffmpegArgs("pipe:0", false)...)
	cmd.Stdin = resp.Body
	return startDecoder(cmd, resp.Body)
}

func ffmpegArgs(input string, remote bool) []string {
	var args []string
	if remote {
		args = append(args,
			"-reconnect", "1",
			"-reconnect_streamed", "1",
			"-reconnect_delay_max", "5",
		)
	}
	return append(args,
		"-i", input,
		"-f", "s16le",
		"-ar", strconv.Itoa(SampleRate),
		"-ac", strconv.Itoa(Channels),
		"-loglevel", "warning",
		"pipe:1",
	)
}

func startDecoder(cmd *exec.Cmd, input io.Closer) (io.ReadCloser, error) {
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		if input != nil {
			input.Close()
		}
		return nil, fmt.Errorf("stdout pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		if input != nil {
			input.Close()
		}
		return nil, fmt.Errorf("failed to start %s: %w", cmd.Path, err)
	}

	return &decoderStream{ReadCloser: stdout, cmd: cmd, input: input}, nil
}

// decoderStream reaps the ffmpeg process when the reader is closed
type decoderStream struct {
	io.ReadCloser
	cmd   *exec.Cmd
	input io.Closer
}

func (d *decoderStream) Close() error {
	d.ReadCloser.Close()
	if d.input != nil {
		d.input.Close()
	}
	if d.cmd.Process != nil {
		_ = d.cmd.Process.Kill()
	}
	// killed processes always report an error from Wait
	_ = d.cmd.Wait()
	return nil
}
