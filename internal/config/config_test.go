package config

import (
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	c, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Port != "5175" || c.Addr() != ":5175" {
		t.Fatalf("port = %q", c.Port)
	}
	if c.SessionTTL != 720*time.Hour || c.SessionIdleTTL != 24*time.Hour {
		t.Fatalf("ttls = %v %v", c.SessionTTL, c.SessionIdleTTL)
	}
	if c.HistoryDSN != "file::memory:?cache=shared" {
		t.Fatalf("dsn = %q", c.HistoryDSN)
	}
	if c.AdminPasswordHash != "" {
		t.Fatalf("admin must be disabled by default")
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("SESSION_IDLE_TTL", "90m")
	t.Setenv("WORDS_HARD_FILE", "/tmp/hard.txt")
	c, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Port != "9000" || !c.LogPretty || c.SessionIdleTTL != 90*time.Minute || c.WordsHardFile != "/tmp/hard.txt" {
		t.Fatalf("overrides not applied: %+v", c)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	if _, err := Parse(); err == nil {
		t.Fatalf("expected error for bad duration")
	}
}

func TestParseRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("SESSION_IDLE_TTL", "0s")
	if _, err := Parse(); err == nil {
		t.Fatalf("expected error for zero idle ttl")
	}
}
