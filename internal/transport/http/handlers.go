package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/justthendra/devlab/internal/domain/download"
	"github.com/justthendra/devlab/internal/domain/imagegen"
)

type downloadUseCases interface {
	DownloadMP3(ctx context.Context, sourceURL string) (download.Result, error)
}

type imageUseCases interface {
	Enabled() bool
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

type Handler struct {
	downloads downloadUseCases
	images    imageUseCases
}

// NewHandler wires HTTP handlers with application use cases.
func NewHandler(downloadService downloadUseCases, imageService imageUseCases) *Handler {
	return &Handler{downloads: downloadService, images: imageService}
}

// DownloadMP3 handles GET /download/mp3.
func (h *Handler) DownloadMP3(w http.ResponseWriter, r *http.Request) {
	sourceURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if sourceURL == "" {
		writeError(w, http.StatusBadRequest, "url query parameter is required")
		return
	}

	result, err := h.downloads.DownloadMP3(r.Context(), sourceURL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Conversion error: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"fileName": result.FileName,
		"fileData": base64.StdEncoding.EncodeToString(result.Data),
	})
}

// GenerateImage handles POST /generate-image.
func (h *Handler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	image, err := h.images.Generate(r.Context(), payload.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, imagegen.ErrPromptTooShort):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, imagegen.ErrNotConfigured):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(image)
}

// Health handles the liveness probe endpoint.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
