package web

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvListenAddr = "FRAMED_LISTEN"
	EnvDevMode    = "FRAMED_DEV"
)

// ServerConfig contains settings for running the preview server.
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
}

// ServerConfigFromEnv starts from the configured values and applies the
// FRAMED_LISTEN and FRAMED_DEV overrides.
func ServerConfigFromEnv(defaultListenAddr string, defaultDev bool) (ServerConfig, error) {
	listenAddr := os.Getenv(EnvListenAddr)
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	devMode := defaultDev
	if raw := os.Getenv(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		devMode = parsed
	}

	return ServerConfig{ListenAddr: listenAddr, DevMode: devMode}, nil
}
