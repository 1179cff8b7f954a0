package imagegen

import "errors"

// ErrPromptTooShort indicates the prompt does not meet the minimum length.
var ErrPromptTooShort = errors.New("Prompt is too short.")

// ErrNotConfigured indicates no upstream credential is configured.
var ErrNotConfigured = errors.New("image generation is not configured")

// UpstreamError reports a non-success reply from the image API.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return "Unknown API error"
	}
	return e.Message
}
