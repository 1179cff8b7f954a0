package stability

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/justthendra/devlab/internal/domain/imagegen"
)

// DefaultAPIURL is the Stability AI SD3 image generation endpoint.
const DefaultAPIURL = "https://api.stability.ai/v2beta/stable-image/generate/sd3"

// Client is a Stability AI infrastructure adapter.
type Client struct {
	URL  string
	Key  string
	HTTP *http.Client
}

// NewClient creates a Stability API adapter. Empty url falls back to
// the production endpoint.
func NewClient(url, key string) *Client {
	if url == "" {
		url = DefaultAPIURL
	}
	return &Client{
		URL:  strings.TrimSpace(url),
		Key:  strings.TrimSpace(key),
		HTTP: &http.Client{Timeout: 60 * time.Second},
	}
}

// Enabled reports whether an API credential is configured.
func (c *Client) Enabled() bool {
	return c.Key != ""
}

// Generate submits the prompt and returns the decoded PNG bytes.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("prompt", prompt); err != nil {
		return nil, err
	}
	if err := form.WriteField("output_format", "png"); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &imagegen.UpstreamError{Message: fmt.Sprintf("image API unreachable: %v", err)}
	}
	defer resp.Body.Close()

	var result struct {
		Image  string   `json:"image"`
		Errors []string `json:"errors"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 32<<20)).Decode(&result); err != nil {
		return nil, &imagegen.UpstreamError{Status: resp.StatusCode, Message: "malformed image API response"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &imagegen.UpstreamError{
			Status:  resp.StatusCode,
			Message: strings.Join(result.Errors, ", "),
		}
	}

	image, err := base64.StdEncoding.DecodeString(result.Image)
	if err != nil {
		return nil, &imagegen.UpstreamError{Status: resp.StatusCode, Message: "image API returned invalid base64 payload"}
	}
	if len(image) == 0 {
		return nil, &imagegen.UpstreamError{Status: resp.StatusCode, Message: "image API returned an empty image"}
	}
	return image, nil
}
