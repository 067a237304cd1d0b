package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures the full runtime configuration. Every value has a local-dev
// default so `go run ./cmd/server` works with nothing set.
type Server struct {
	Addr string

	// Base URLs of the two mocked upstream services. Each is independently
	// overridable.
	BlockchainAPIURL string
	AIMLAPIURL       string

	// UpstreamTimeout bounds every bridge/proxy call; a timeout maps to the
	// same upstream-unreachable path as a connection failure.
	UpstreamTimeout time.Duration

	// SeedPath points at an optional JSON fixture of tourists loaded at
	// startup. A missing file is not an error.
	SeedPath string

	JWTSigningKey string
	PingMessage   string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:             getEnv("HTTP_ADDR", ":8080"),
		BlockchainAPIURL: getEnv("BLOCKCHAIN_API_URL", "http://localhost:5002"),
		AIMLAPIURL:       getEnv("AIML_API_URL", "http://localhost:5003"),
		UpstreamTimeout:  time.Duration(getEnvInt("UPSTREAM_TIMEOUT", 5)) * time.Second,
		SeedPath:         getEnv("SEED_PATH", "seed_data/tourists.json"),
		JWTSigningKey:    getEnv("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		PingMessage:      getEnv("PING_MESSAGE", "ping"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
