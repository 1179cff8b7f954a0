package imagegen

import (
	"context"

	domain "github.com/justthendra/devlab/internal/domain/imagegen"
)

const minPromptLength = 3

// Service handles image-generation use cases.
type Service struct {
	gateway Gateway
}

// NewService creates the image-generation service with an injected gateway.
func NewService(gateway Gateway) *Service {
	return &Service{gateway: gateway}
}

// Enabled reports whether the upstream image API is configured.
func (s *Service) Enabled() bool {
	return s.gateway.Enabled()
}

// Generate validates the prompt and proxies it to the upstream API,
// returning raw PNG bytes.
func (s *Service) Generate(ctx context.Context, prompt string) ([]byte, error) {
	if len([]rune(prompt)) < minPromptLength {
		return nil, domain.ErrPromptTooShort
	}
	if !s.Enabled() {
		return nil, domain.ErrNotConfigured
	}
	return s.gateway.Generate(ctx, prompt)
}
