package http

import (
	"github.com/gorilla/mux"
)

// NewRouter configures HTTP routes.
func NewRouter(handler *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/download/mp3", handler.DownloadMP3).Methods("GET")
	r.HandleFunc("/generate-image", handler.GenerateImage).Methods("POST")
	r.HandleFunc("/healthz", handler.Health).Methods("GET")
	return r
}
