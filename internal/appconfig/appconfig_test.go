// internal/appconfig/appconfig_test.go
package appconfig

import (
	"os"
	"strings"
	"testing"
	"time"
)

// TestLoad verifies config loading across a valid file, invalid JSON, a
// nonexistent explicit path, and the defaults applied when values are
// omitted. Temporary files simulate each scenario.
func TestLoad(t *testing.T) {
	validConfig := `{
        "knowledgeBase": "kb.json",
        "predictUrl": "http://localhost:9000/predict",
        "timeout": 3,
        "strict": true
    }`
	tmpfile, err := os.CreateTemp("", "config.json")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())
	if _, err := tmpfile.Write([]byte(validConfig)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.KnowledgeBase() != "kb.json" {
		t.Fatalf("expected knowledge base kb.json, got %q", cfg.KnowledgeBase())
	}
	if cfg.Endpoint() != "http://localhost:9000/predict" {
		t.Fatalf("unexpected endpoint %q", cfg.Endpoint())
	}
	if cfg.RequestTimeout() != 3*time.Second {
		t.Fatalf("expected request timeout of 3s, got %v", cfg.RequestTimeout())
	}
	if !cfg.Strict {
		t.Fatal("expected strict mode to be enabled")
	}

	invalidJSON := `{ "knowledgeBase": `
	tmpfile2, err := os.CreateTemp("", "config.json")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile2.Name())
	if _, err := tmpfile2.Write([]byte(invalidJSON)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile2.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmpfile2.Name()); err == nil {
		t.Fatal("Load() with invalid JSON should have failed")
	}

	if _, err := Load("nonexistent.json"); err == nil {
		t.Fatal("Load() with nonexistent explicit path should have failed")
	}
}

// TestLoadDefaultPathMissing verifies that a missing config file at the
// default path falls back to defaults instead of failing.
func TestLoadDefaultPathMissing(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with missing default config failed: %v", err)
	}
	if cfg.KnowledgeBase() != DefaultKnowledgeBasePath {
		t.Fatalf("expected default knowledge base path, got %q", cfg.KnowledgeBase())
	}
	if cfg.Endpoint() != DefaultPredictURL {
		t.Fatalf("expected default predict URL, got %q", cfg.Endpoint())
	}
	if cfg.RequestTimeout() != 10*time.Second {
		t.Fatalf("expected default request timeout of 10s, got %v", cfg.RequestTimeout())
	}
}

// TestDefaults verifies the zero config resolves to the historical literals.
func TestDefaults(t *testing.T) {
	t.Parallel()

	var cfg Config
	if cfg.KnowledgeBase() != "data/knowledge_base.json" {
		t.Fatalf("unexpected default knowledge base: %q", cfg.KnowledgeBase())
	}
	if cfg.Endpoint() != "http://localhost:8000/predict" {
		t.Fatalf("unexpected default endpoint: %q", cfg.Endpoint())
	}
	if cfg.RequestTimeout() != 10*time.Second {
		t.Fatalf("unexpected default timeout: %v", cfg.RequestTimeout())
	}
}

// TestShowConfig verifies the config summary includes the effective values.
func TestShowConfig(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Strict = true

	var b strings.Builder
	ShowConfig(&b, "", &cfg)
	out := b.String()

	if !strings.Contains(out, "No config file loaded") {
		t.Fatalf("expected defaults notice, got:\n%s", out)
	}
	if !strings.Contains(out, "data/knowledge_base.json") {
		t.Fatalf("expected knowledge base path in output, got:\n%s", out)
	}
	if !strings.Contains(out, "http://localhost:8000/predict") {
		t.Fatalf("expected predict URL in output, got:\n%s", out)
	}
	if !strings.Contains(out, "Strict Mode:     true") {
		t.Fatalf("expected strict mode line, got:\n%s", out)
	}
}
