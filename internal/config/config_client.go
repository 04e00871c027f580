package config

import (
	"flag"
	"fmt"
	"time"
)

// Client defaults used when neither env vars nor flags provide a value.
const (
	DefaultClientServerAddress  = "http://localhost:3000"
	DefaultClientRequestTimeout = 15 * time.Second
)

// GetClientConfig loads the CLI client configuration from environment
// variables (CLIENT_SERVER_ADDRESS, CLIENT_REQUEST_TIMEOUT) and command-line
// flags (-s, -request-timeout), flags winning when both are set.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error parsing client env configs: %w", err)
	}

	var serverAddress string
	var requestTimeout time.Duration
	flag.StringVar(&serverAddress, "s", "", "Attendance server base address")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.Parse()

	if serverAddress != "" {
		cfg.ServerAddress = serverAddress
	}
	if requestTimeout != 0 {
		cfg.RequestTimeout = requestTimeout
	}

	if cfg.ServerAddress == "" {
		cfg.ServerAddress = DefaultClientServerAddress
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultClientRequestTimeout
	}

	return cfg, nil
}
