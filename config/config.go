// Package config provides environment settings and the subject roster.
package config

import (
	"os"
	"strconv"
	"time"
)

// Settings are the runtime knobs loaded from the environment.
type Settings struct {
	UserAgent      string
	ScholarBaseURL string
	RequestTimeout time.Duration
	InfoboxURL     string
}

// Load reads settings from environment variables with sensible defaults.
func Load() *Settings {
	timeoutSec, err := strconv.Atoi(getEnv("REQUEST_TIMEOUT_SEC", "30"))
	if err != nil || timeoutSec <= 0 {
		timeoutSec = 30
	}
	return &Settings{
		UserAgent:      getEnv("FACULTY_USER_AGENT", "Mozilla/5.0 (compatible; facultyreport/1.0)"),
		ScholarBaseURL: getEnv("SCHOLAR_BASE_URL", ""),
		RequestTimeout: time.Duration(timeoutSec) * time.Second,
		InfoboxURL:     getEnv("INFOBOX_URL", "https://en.wikipedia.org/wiki/Thomas_Brunell"),
	}
}

// Headers is the static browser-like header set sent with every fetch.
func (s *Settings) Headers() map[string]string {
	return map[string]string{"User-Agent": s.UserAgent}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
