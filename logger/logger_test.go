package logger

import (
	"testing"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
		Output: "stderr",
	}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	l := NewFromEnv("env-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestApplyDefaultsOutputIsStderr(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Output != "stderr" {
		t.Errorf("default output = %q, want stderr (stdout carries the data stream)", cfg.Output)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{Level: "info", Format: "json", Output: "stderr"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg.Level = "info"
	cfg.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("svc").WithComponent("joiner")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestFields(t *testing.T) {
	m := Fields("task", 3, "bytes", int64(10))
	if m["task"] != 3 {
		t.Errorf("task field = %v, want 3", m["task"])
	}
	if m["bytes"] != int64(10) {
		t.Errorf("bytes field = %v, want 10", m["bytes"])
	}
}

func TestFieldsOddArgs(t *testing.T) {
	m := Fields("only-key")
	if len(m) != 0 {
		t.Errorf("expected empty map for dangling key, got %v", m)
	}
}
