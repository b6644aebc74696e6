// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/ManuGH/medialive-go/internal/log"
)

// ParseString returns the value of key, or defaultValue when key is unset
// or empty.
func ParseString(key, defaultValue string) string {
	return parseEnv(key, defaultValue, func(s string) (string, error) { return s, nil })
}

// ParseInt returns key as an int. Missing or malformed values yield
// defaultValue; malformed ones are logged as a warning.
func ParseInt(key string, defaultValue int) int {
	return parseEnv(key, defaultValue, strconv.Atoi)
}

// ParseDuration returns key in time.ParseDuration syntax ("250ms").
// Missing or malformed values yield defaultValue.
func ParseDuration(key string, defaultValue time.Duration) time.Duration {
	return parseEnv(key, defaultValue, time.ParseDuration)
}

func parseEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	logger := log.WithComponent("config")
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		logger.Debug().
			Str("key", key).
			Interface("default", defaultValue).
			Str("source", "default").
			Msg("using default value")
		return defaultValue
	}

	v, err := parse(raw)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("key", key).
			Str("value", raw).
			Interface("default", defaultValue).
			Msg("invalid environment value, using default")
		return defaultValue
	}
	logger.Debug().
		Str("key", key).
		Str("value", raw).
		Str("source", "environment").
		Msg("using environment variable")
	return v
}
