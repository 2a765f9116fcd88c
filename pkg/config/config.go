package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultBackendURL is used when no backend origin is configured.
const DefaultBackendURL = "http://localhost:8000"

var (
	BackendURL = DefaultBackendURL
	ListenAddr = ":8080"

	// Site settings
	SiteFile = ""
	SiteLang = "it"

	// Server settings
	SSL     = false
	GinMode = ""
)

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	BackendURL = getEnv("BACKEND_URL", getEnv("VITE_BACKEND_URL", DefaultBackendURL))

	ListenAddr = ":8080"
	if port := os.Getenv("PORT"); port != "" {
		ListenAddr = ":" + port
	}
	ListenAddr = getEnv("LISTEN_ADDR", ListenAddr)

	SiteFile = getEnv("SITE_FILE", "")
	SiteLang = getEnv("SITE_LANG", "it")
	GinMode = getEnv("GIN_MODE", "")

	SSL = false
	if v := os.Getenv("SSL"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			SSL = val
		}
	}
}
