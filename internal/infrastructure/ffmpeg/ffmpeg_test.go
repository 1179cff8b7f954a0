package ffmpeg

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// fakeEngine writes a stub executable that drains stdin, writes bytes to
// the output path (the last argument) and exits with the given status.
func fakeEngine(t *testing.T, exitCode int) string {
	t.Helper()
	script := "#!/bin/sh\n" +
		"cat >/dev/null\n" +
		"for last in \"$@\"; do :; done\n" +
		"printf 'engine-bytes' > \"$last\"\n" +
		"exit " + strconv.Itoa(exitCode) + "\n"
	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub engine: %v", err)
	}
	return path
}

func TestTranscodeToMP3_WritesOutput(t *testing.T) {
	transcoder := NewTranscoder(fakeEngine(t, 0))
	outputPath := filepath.Join(t.TempDir(), "video_abc.mp3")

	err := transcoder.TranscodeToMP3(context.Background(), strings.NewReader("raw-audio"), outputPath)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "engine-bytes" {
		t.Fatalf("unexpected output payload %q", data)
	}
}

func TestTranscodeToMP3_RemovesPartialOutputOnFailure(t *testing.T) {
	transcoder := NewTranscoder(fakeEngine(t, 1))
	outputPath := filepath.Join(t.TempDir(), "video_abc.mp3")

	err := transcoder.TranscodeToMP3(context.Background(), strings.NewReader("raw-audio"), outputPath)
	if err == nil {
		t.Fatalf("expected engine failure")
	}
	if !strings.Contains(err.Error(), "failed") {
		t.Fatalf("unexpected error message %q", err)
	}
	if _, statErr := os.Stat(outputPath); !os.IsNotExist(statErr) {
		t.Fatalf("partial output left at %s", outputPath)
	}
}

func TestTranscodeToMP3_MissingExecutable(t *testing.T) {
	transcoder := NewTranscoder(filepath.Join(t.TempDir(), "no-such-ffmpeg"))
	outputPath := filepath.Join(t.TempDir(), "video_abc.mp3")

	err := transcoder.TranscodeToMP3(context.Background(), strings.NewReader("raw-audio"), outputPath)
	if err == nil {
		t.Fatalf("expected error for missing executable")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("unexpected error message %q", err)
	}
}

func TestAvailable(t *testing.T) {
	if !NewTranscoder(fakeEngine(t, 0)).Available() {
		t.Fatalf("expected stub engine to be available")
	}
	if NewTranscoder("/no/such/binary").Available() {
		t.Fatalf("expected missing engine to be unavailable")
	}
}
