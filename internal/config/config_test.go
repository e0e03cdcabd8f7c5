package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("CHANNEL_URL", "")
	t.Setenv("CHANNEL_QUEUE", "")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Port != "3000" {
		t.Errorf("App.Port = %v, want 3000", cfg.App.Port)
	}
	if cfg.Channel.Queue != "reservations_queue" {
		t.Errorf("Channel.Queue = %v, want reservations_queue", cfg.Channel.Queue)
	}
	if cfg.Channel.Enabled() {
		t.Error("Channel.Enabled() = true without CHANNEL_URL")
	}
	if got := cfg.App.RequestTimeout(); got != 30*time.Second {
		t.Errorf("RequestTimeout() = %v, want 30s", got)
	}
}

func TestLoadChannelEnabled(t *testing.T) {
	t.Setenv("CHANNEL_URL", "redis://localhost:6379/0")
	t.Setenv("CHANNEL_QUEUE", "staging_reservations")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Channel.Enabled() {
		t.Error("Channel.Enabled() = false with CHANNEL_URL set")
	}
	if cfg.Channel.Queue != "staging_reservations" {
		t.Errorf("Channel.Queue = %v, want staging_reservations", cfg.Channel.Queue)
	}
}

func TestAddr(t *testing.T) {
	app := AppConfig{Host: "127.0.0.1", Port: "8080"}
	if got := app.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %v, want 127.0.0.1:8080", got)
	}
}
