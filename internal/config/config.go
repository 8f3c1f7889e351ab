package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr        string
	JWTSecret   string
	DatabaseURL string
	// SimulatedLatency delays every request, to exercise frontend loading
	// states during development. Zero disables it.
	SimulatedLatency time.Duration
}

func Load() Config {
	addr := os.Getenv("ECOHERO_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	var latency time.Duration
	if raw := os.Getenv("SIMULATED_LATENCY_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
			latency = time.Duration(ms) * time.Millisecond
		}
	}

	return Config{
		Addr:             addr,
		JWTSecret:        os.Getenv("JWT_SECRET"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		SimulatedLatency: latency,
	}
}
