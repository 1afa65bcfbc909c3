package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"bhaskara/internal/equation"
)

// config holds process settings read from the environment.
type config struct {
	Addr            string
	ShutdownTimeout time.Duration
	FormLimit       int
	FormIdleTimeout time.Duration
}

func loadConfig() (config, error) {
	cfg := config{
		Addr:            envOr("HTTP_ADDR", ":8080"),
		ShutdownTimeout: 5 * time.Second,
		FormLimit:       equation.DefaultFormLimit,
		FormIdleTimeout: equation.DefaultIdleTimeout,
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	if v := os.Getenv("FORM_SESSION_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return config{}, fmt.Errorf("FORM_SESSION_LIMIT: want a positive integer, got %q", v)
		}
		cfg.FormLimit = n
	}

	if v := os.Getenv("FORM_IDLE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return config{}, fmt.Errorf("FORM_IDLE_TIMEOUT: want a positive duration, got %q", v)
		}
		cfg.FormIdleTimeout = d
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
