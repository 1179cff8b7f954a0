package download

import (
	"context"
	"io"
)

// StreamSource is an application port for remote media metadata and
// audio stream access.
type StreamSource interface {
	// Title resolves the human-readable title of the remote resource.
	Title(ctx context.Context, sourceURL string) (string, error)
	// OpenAudioStream opens the highest-quality audio-only stream.
	// The caller must close the returned stream.
	OpenAudioStream(ctx context.Context, sourceURL string) (io.ReadCloser, error)
}

// Transcoder is an application port for converting a raw audio stream
// into an MP3 file on disk.
type Transcoder interface {
	// TranscodeToMP3 reads src and writes constant-bitrate MP3 output
	// to outputPath. On failure no partial file remains at outputPath.
	TranscodeToMP3(ctx context.Context, src io.Reader, outputPath string) error
}

// ArtifactStore is an application port for scoped temporary artifacts.
type ArtifactStore interface {
	// TempPath returns the absolute temp location for fileName.
	TempPath(fileName string) string
	// Collect reads the whole artifact into memory and deletes it,
	// whether or not the read succeeded.
	Collect(path string) ([]byte, error)
	// Remove deletes the artifact if it exists.
	Remove(path string) error
}
