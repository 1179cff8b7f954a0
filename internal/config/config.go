package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds runtime settings for the server.
type Config struct {
	ServerAddr             string
	TmpDir                 string
	FFmpegPath             string
	DownloadTimeoutSeconds int
	DownloadConcurrency    int
	StabilityAPIKey        string
	StabilityAPIURL        string
}

// Load reads environment variables and returns normalized runtime config.
func Load() Config {
	return Config{
		ServerAddr:             getEnv("SERVER_ADDR", ":8080"),
		TmpDir:                 getEnv("TMP_DIR", os.TempDir()),
		FFmpegPath:             getEnv("FFMPEG_PATH", "ffmpeg"),
		DownloadTimeoutSeconds: getEnvInt("DOWNLOAD_TIMEOUT_SECONDS", 300),
		DownloadConcurrency:    getEnvInt("DOWNLOAD_CONCURRENCY", 4),
		StabilityAPIKey:        strings.TrimSpace(os.Getenv("STABILITY_API_KEY")),
		StabilityAPIURL:        strings.TrimSpace(os.Getenv("STABILITY_API_URL")),
	}
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	var out int
	_, err := fmt.Sscanf(value, "%d", &out)
	if err != nil || out <= 0 {
		return fallback
	}
	return out
}
