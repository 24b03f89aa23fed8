package config

import (
	"log/slog"
	"path/filepath"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("AUTH_SECRET", "test-secret")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("GeminiAPIKey = %q", cfg.GeminiAPIKey)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.EmbeddingModelName != "text-embedding-004" {
		t.Errorf("EmbeddingModelName = %q", cfg.EmbeddingModelName)
	}
	if cfg.VectorSize != 768 {
		t.Errorf("VectorSize = %d, want 768", cfg.VectorSize)
	}
	if cfg.ChunkSize != 1000 || cfg.ChunkOverlap != 200 {
		t.Errorf("chunking = %d/%d, want 1000/200", cfg.ChunkSize, cfg.ChunkOverlap)
	}
	if cfg.QdrantCollection != "documents" {
		t.Errorf("QdrantCollection = %q", cfg.QdrantCollection)
	}
	if cfg.APIPort != "8000" {
		t.Errorf("APIPort = %q", cfg.APIPort)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{"missing api key", "GEMINI_API_KEY"},
		{"missing auth secret", "AUTH_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			if _, err := Load(); err == nil {
				t.Errorf("Load() without %s should fail", tt.unset)
			}
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("VECTOR_SIZE", "1024")
	t.Setenv("CHUNK_SIZE", "500")
	t.Setenv("CHUNK_OVERLAP", "50")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GeminiModel != "gemini-2.5-pro" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.VectorSize != 1024 {
		t.Errorf("VectorSize = %d", cfg.VectorSize)
	}
	if cfg.ChunkSize != 500 || cfg.ChunkOverlap != 50 {
		t.Errorf("chunking = %d/%d", cfg.ChunkSize, cfg.ChunkOverlap)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q", cfg.LogFormat)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric vector size", "VECTOR_SIZE", "big"},
		{"zero vector size", "VECTOR_SIZE", "0"},
		{"zero chunk size", "CHUNK_SIZE", "0"},
		{"overlap not below chunk size", "CHUNK_OVERLAP", "1000"},
		{"negative overlap", "CHUNK_OVERLAP", "-1"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"unknown log format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s should fail", tt.key, tt.value)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", 0, true},
	}

	for _, tt := range tests {
		got, err := parseLogLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseLogLevel(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}
