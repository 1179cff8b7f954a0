package download

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/justthendra/devlab/internal/domain/download"
)

const (
	defaultTimeout     = 5 * time.Minute
	defaultConcurrency = 4
)

// Service runs the MP3 extraction pipeline: resolve title, transcode
// the remote audio stream to a temp file, package the bytes.
type Service struct {
	source     StreamSource
	transcoder Transcoder
	store      ArtifactStore
	logger     *log.Logger

	timeout time.Duration
	slots   chan struct{}
}

// NewService creates the download use-case service with injected ports.
// Non-positive timeout or concurrency values fall back to defaults.
func NewService(source StreamSource, transcoder Transcoder, store ArtifactStore, logger *log.Logger, timeout time.Duration, concurrency int) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Service{
		source:     source,
		transcoder: transcoder,
		store:      store,
		logger:     logger,
		timeout:    timeout,
		slots:      make(chan struct{}, concurrency),
	}
}

// DownloadMP3 executes one pipeline invocation for sourceURL. It either
// returns a complete result or an error; the temp artifact created along
// the way never survives the call.
func (s *Service) DownloadMP3(ctx context.Context, sourceURL string) (download.Result, error) {
	if err := ctx.Err(); err != nil {
		return download.Result{}, err
	}

	select {
	case s.slots <- struct{}{}:
		defer func() { <-s.slots }()
	case <-ctx.Done():
		return download.Result{}, ctx.Err()
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	title := s.resolveTitle(ctx, sourceURL)
	fileName := download.FileName(title, uuid.NewString())
	tempPath := s.store.TempPath(fileName)

	done := false
	defer func() {
		if !done {
			_ = s.store.Remove(tempPath)
		}
	}()

	if err := s.transcode(ctx, sourceURL, tempPath); err != nil {
		s.logger.Printf("mp3 download failed: %s: %v", sourceURL, err)
		return download.Result{}, err
	}

	data, err := s.store.Collect(tempPath)
	done = true
	if err != nil {
		s.logger.Printf("mp3 packaging failed: %s: %v", tempPath, err)
		return download.Result{}, &download.PackagingError{Cause: err}
	}

	return download.Result{Data: data, FileName: fileName}, nil
}

// resolveTitle never fails: any metadata error or unusable title falls
// back to the default name.
func (s *Service) resolveTitle(ctx context.Context, sourceURL string) string {
	raw, err := s.source.Title(ctx, sourceURL)
	if err != nil {
		s.logger.Printf("title lookup failed, using fallback: %s: %v", sourceURL, err)
		return download.DefaultTitle
	}
	return download.ResolveTitle(raw)
}

func (s *Service) transcode(ctx context.Context, sourceURL, tempPath string) error {
	stream, err := s.source.OpenAudioStream(ctx, sourceURL)
	if err != nil {
		return &download.TranscodeError{Cause: err}
	}
	defer stream.Close()

	if err := s.transcoder.TranscodeToMP3(ctx, stream, tempPath); err != nil {
		return &download.TranscodeError{Cause: err}
	}
	return nil
}
