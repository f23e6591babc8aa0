package config

import (
	"os"
	"strconv"
)

// FromEnv overlays AGECORE_* environment variables on base. Unset or
// malformed variables leave base untouched.
func FromEnv(base Config) Config {
	cfg := base

	if val := getEnvInt("AGECORE_PLAYERS"); val > 0 {
		cfg.Players = val
	}
	if val, ok := getEnvInt64("AGECORE_SEED"); ok {
		cfg.Seed = val
	}
	if val := os.Getenv("AGECORE_CONTENT"); val != "" {
		cfg.Content = val
	}
	if val := os.Getenv("AGECORE_LOG_LEVEL"); val != "" {
		cfg.Log.Level = val
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvInt64(key string) (int64, bool) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false
	}
	num, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}
