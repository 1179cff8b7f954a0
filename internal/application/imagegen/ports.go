package imagegen

import "context"

// Gateway is an application port for the image-generation upstream.
type Gateway interface {
	Enabled() bool
	Generate(ctx context.Context, prompt string) ([]byte, error)
}
