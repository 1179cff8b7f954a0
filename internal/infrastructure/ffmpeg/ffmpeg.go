package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Transcoder wraps ffmpeg subprocess calls. The executable location is
// injected at construction instead of read from global state.
type Transcoder struct {
	Path string
}

// NewTranscoder creates an ffmpeg adapter. Empty path means "ffmpeg"
// resolved from PATH.
func NewTranscoder(path string) *Transcoder {
	if path == "" {
		path = "ffmpeg"
	}
	return &Transcoder{Path: path}
}

// Available checks if ffmpeg is executable.
func (t *Transcoder) Available() bool {
	_, err := exec.LookPath(t.Path)
	return err == nil
}

// TranscodeToMP3 reads raw audio from src and writes constant 128 kbps
// MP3 output to outputPath. On failure any partial output file is
// removed before the error is returned.
func (t *Transcoder) TranscodeToMP3(ctx context.Context, src io.Reader, outputPath string) error {
	if _, err := exec.LookPath(t.Path); err != nil {
		return fmt.Errorf("ffmpeg executable not found: %w", err)
	}

	args := []string{
		"-y",
		"-i", "pipe:0",
		"-vn",
		"-c:a", "libmp3lame",
		"-b:a", "128k",
		"-f", "mp3",
		outputPath,
	}

	if err := runWithInput(ctx, src, t.Path, args...); err != nil {
		_ = os.Remove(outputPath)
		return err
	}
	return nil
}

func runWithInput(ctx context.Context, input io.Reader, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.Stdout = &stderr
	cmd.Stdin = input
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
