package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// lookupEnv returns the trimmed value of key and whether it is non-empty.
func lookupEnv(key string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	return raw, raw != ""
}

// parsedEnv parses key with parse, keeping def when the variable is unset,
// malformed or rejected by valid.
func parsedEnv[T any](key string, def T, parse func(string) (T, error), valid func(T) bool) T {
	raw, ok := lookupEnv(key)
	if !ok {
		return def
	}
	val, err := parse(raw)
	if err != nil || (valid != nil && !valid(val)) {
		return def
	}
	return val
}

func envOrDefault(key, defaultValue string) string {
	if raw, ok := lookupEnv(key); ok {
		return raw
	}
	return defaultValue
}

func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	return parsedEnv(key, defaultValue, time.ParseDuration, func(d time.Duration) bool { return d > 0 })
}

func intEnvOrDefault(key string, defaultValue int) int {
	return parsedEnv(key, defaultValue, strconv.Atoi, func(n int) bool { return n > 0 })
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	return parsedEnv(key, defaultValue, parseBool, nil)
}

// parseBool accepts strconv's forms plus yes/no.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// listEnvOrDefault splits a comma-separated value, dropping blanks.
func listEnvOrDefault(key, defaultValue string) []string {
	parts := strings.Split(envOrDefault(key, defaultValue), ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
