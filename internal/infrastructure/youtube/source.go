package youtube

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/kkdai/youtube/v2"

	"github.com/justthendra/devlab/internal/domain/download"
)

// Source fetches remote media metadata and audio streams.
type Source struct {
	client youtube.Client
}

// NewSource creates the remote media adapter.
func NewSource() *Source {
	return &Source{client: youtube.Client{}}
}

// Title resolves the display title of the remote resource.
func (s *Source) Title(ctx context.Context, sourceURL string) (string, error) {
	video, err := s.client.GetVideoContext(ctx, sourceURL)
	if err != nil {
		return "", fmt.Errorf("metadata lookup failed: %w", err)
	}
	return video.Title, nil
}

// OpenAudioStream opens the audio-only stream with the highest
// available bitrate. The caller must close the returned stream.
func (s *Source) OpenAudioStream(ctx context.Context, sourceURL string) (io.ReadCloser, error) {
	video, err := s.client.GetVideoContext(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("cannot open remote stream: %w", err)
	}

	formats := video.Formats.Type("audio")
	if len(formats) == 0 {
		return nil, download.ErrNoAudioTrack
	}
	sort.SliceStable(formats, func(i, j int) bool {
		return formats[i].Bitrate > formats[j].Bitrate
	})

	stream, _, err := s.client.GetStreamContext(ctx, video, &formats[0])
	if err != nil {
		return nil, fmt.Errorf("cannot open audio stream: %w", err)
	}
	return stream, nil
}
