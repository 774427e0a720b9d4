package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearAPIEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GOJOKE_API_URL_BASE", "GOJOKE_API_TIMEOUT", "GOJOKE_PROXY",
		"GOJOKE_ENDPOINT_RANDOM", "GOJOKE_ENDPOINT_CATEGORY",
		"GOJOKE_ENDPOINT_SEARCH", "GOJOKE_ENDPOINT_CATEGORIES",
		"GOJOKE_CA_FILE", "GOJOKE_CLIENT_CERT", "GOJOKE_CLIENT_KEY", "GOJOKE_TLS_INSECURE",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	configDir := filepath.Join(home, ".config", "gojoke")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	got := DefaultConfig()

	if got.Theme != "catppuccin-mocha" {
		t.Fatalf("Theme = %q, want catppuccin-mocha", got.Theme)
	}
	if got.DefaultMode != "random" {
		t.Fatalf("DefaultMode = %q, want random", got.DefaultMode)
	}
	if got.API.Timeout != 10*time.Second {
		t.Fatalf("API.Timeout = %s, want 10s", got.API.Timeout)
	}
	if got.API.BaseURL != "https://api.chucknorris.io" {
		t.Fatalf("API.BaseURL = %q", got.API.BaseURL)
	}
}

func TestLoadReturnsDefaultsWhenConfigMissing(t *testing.T) {
	clearAPIEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	got := Load()
	want := DefaultConfig()
	want.LogFile = filepath.Join(home, ".local", "share", "gojoke", "gojoke.log")
	want.StoragePath = filepath.Join(home, ".local", "share", "gojoke", "storage.db")

	if got != want {
		t.Fatalf("Load() = %#v, want defaults %#v", got, want)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	clearAPIEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, "theme: nord\ndefault_mode: search\nlog_level: debug\nlog_file: /tmp/j.log\nstorage_path: /tmp/s.db\n")

	got := Load()

	if got.Theme != "nord" {
		t.Fatalf("Theme = %q, want nord", got.Theme)
	}
	if got.DefaultMode != "search" {
		t.Fatalf("DefaultMode = %q, want search", got.DefaultMode)
	}
	if got.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", got.LogLevel)
	}
	if got.LogFile != "/tmp/j.log" {
		t.Fatalf("LogFile = %q, want /tmp/j.log", got.LogFile)
	}
	if got.StoragePath != "/tmp/s.db" {
		t.Fatalf("StoragePath = %q, want /tmp/s.db", got.StoragePath)
	}
}

func TestLoadInvalidYAMLKeepsDefaults(t *testing.T) {
	clearAPIEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, "theme: [\n")

	got := Load()

	if got.Theme != "catppuccin-mocha" {
		t.Fatalf("Theme = %q, want default", got.Theme)
	}
}

func TestLoadAPIFromEnv(t *testing.T) {
	clearAPIEnv(t)
	t.Setenv("GOJOKE_API_URL_BASE", "http://localhost:8080")
	t.Setenv("GOJOKE_API_TIMEOUT", "3s")
	t.Setenv("GOJOKE_ENDPOINT_SEARCH", "/search?q=")

	got, err := LoadAPIFromEnv()
	if err != nil {
		t.Fatalf("LoadAPIFromEnv() failed: %v", err)
	}
	if got.BaseURL != "http://localhost:8080" {
		t.Fatalf("BaseURL = %q", got.BaseURL)
	}
	if got.Timeout != 3*time.Second {
		t.Fatalf("Timeout = %s, want 3s", got.Timeout)
	}
	if got.EndpointSearch != "/search?q=" {
		t.Fatalf("EndpointSearch = %q", got.EndpointSearch)
	}
	if got.EndpointRandom != "/jokes/random" {
		t.Fatalf("EndpointRandom = %q, want default", got.EndpointRandom)
	}
}

func TestLoadAPIFromEnvTLS(t *testing.T) {
	clearAPIEnv(t)
	t.Setenv("GOJOKE_CA_FILE", "/etc/ssl/corp.pem")
	t.Setenv("GOJOKE_TLS_INSECURE", "true")

	got, err := LoadAPIFromEnv()
	if err != nil {
		t.Fatalf("LoadAPIFromEnv() failed: %v", err)
	}
	if got.CAFile != "/etc/ssl/corp.pem" || !got.TLSInsecure {
		t.Fatalf("TLS settings not read: %#v", got)
	}
	if got.CertFile != "" || got.KeyFile != "" {
		t.Fatalf("unexpected client cert settings: %#v", got)
	}
}

func TestLoadAPIFromEnvInvalidTimeout(t *testing.T) {
	clearAPIEnv(t)
	t.Setenv("GOJOKE_API_TIMEOUT", "soon")

	got, err := LoadAPIFromEnv()
	if err == nil {
		t.Fatal("expected error for invalid duration")
	}
	if got != DefaultAPIConfig() {
		t.Fatalf("expected defaults on error, got %#v", got)
	}
}
