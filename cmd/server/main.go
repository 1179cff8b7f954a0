package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/justthendra/devlab/internal/application/download"
	"github.com/justthendra/devlab/internal/application/imagegen"
	"github.com/justthendra/devlab/internal/config"
	"github.com/justthendra/devlab/internal/infrastructure/ffmpeg"
	"github.com/justthendra/devlab/internal/infrastructure/filesystem"
	"github.com/justthendra/devlab/internal/infrastructure/stability"
	"github.com/justthendra/devlab/internal/infrastructure/youtube"
	httptransport "github.com/justthendra/devlab/internal/transport/http"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	store := filesystem.NewStore(cfg.TmpDir)
	if err := store.EnsureDir(); err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	transcoder := ffmpeg.NewTranscoder(cfg.FFmpegPath)
	if !transcoder.Available() {
		log.Printf("warning: ffmpeg not found at %q, downloads will fail", cfg.FFmpegPath)
	}

	source := youtube.NewSource()
	downloadService := download.NewService(
		source,
		transcoder,
		store,
		log.Default(),
		time.Duration(cfg.DownloadTimeoutSeconds)*time.Second,
		cfg.DownloadConcurrency,
	)

	stabilityClient := stability.NewClient(cfg.StabilityAPIURL, cfg.StabilityAPIKey)
	imageService := imagegen.NewService(stabilityClient)

	handler := httptransport.NewHandler(downloadService, imageService)
	router := httptransport.NewRouter(handler)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	})

	log.Printf("Server started on %s", cfg.ServerAddr)
	log.Fatal(http.ListenAndServe(cfg.ServerAddr, c.Handler(router)))
}
