package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const defaultPort = 5000

type ServerConfig struct {
	Port          int
	Debug         bool
	PublicBaseURL string
}

func GetServerConfig() (*ServerConfig, error) {
	port := defaultPort
	if raw := os.Getenv("PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse PORT: %v", err)
		}
		port = parsed
	}

	debug := false
	if raw := os.Getenv("DEBUG"); raw != "" {
		debug = strings.EqualFold(raw, "true") || raw == "1"
	}

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://localhost:%d", port)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	return &ServerConfig{
		Port:          port,
		Debug:         debug,
		PublicBaseURL: baseURL,
	}, nil
}
