package download

import "errors"

// ErrNoAudioTrack indicates the remote resource has no usable audio stream.
var ErrNoAudioTrack = errors.New("no audio track available")

// TranscodeError reports a remote stream or transcoding engine failure.
type TranscodeError struct {
	Cause error
}

func (e *TranscodeError) Error() string {
	return "transcode failed: " + e.Cause.Error()
}

func (e *TranscodeError) Unwrap() error {
	return e.Cause
}

// PackagingError reports a temp artifact read or cleanup failure after
// a successful transcode.
type PackagingError struct {
	Cause error
}

func (e *PackagingError) Error() string {
	return "packaging failed: " + e.Cause.Error()
}

func (e *PackagingError) Unwrap() error {
	return e.Cause
}
