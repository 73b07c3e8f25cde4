package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Namespace != "g" {
		t.Errorf("Namespace = %q, want %q", cfg.Namespace, "g")
	}
	if cfg.LambdaLanguage != "gremlin-python" {
		t.Errorf("LambdaLanguage = %q, want %q", cfg.LambdaLanguage, "gremlin-python")
	}
	if cfg.Pretty {
		t.Error("Pretty should default to false")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `namespace = "gx"
lambda_language = "gremlin-groovy"
pretty = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Namespace != "gx" {
		t.Errorf("Namespace = %q, want %q", cfg.Namespace, "gx")
	}
	if cfg.LambdaLanguage != "gremlin-groovy" {
		t.Errorf("LambdaLanguage = %q, want %q", cfg.LambdaLanguage, "gremlin-groovy")
	}
	if !cfg.Pretty {
		t.Error("Pretty should be true")
	}
}

func TestLoadConfigPartial(t *testing.T) {
	// Missing keys keep their defaults
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`pretty = true`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Namespace != "g" {
		t.Errorf("Namespace = %q, want default %q", cfg.Namespace, "g")
	}
	if !cfg.Pretty {
		t.Error("Pretty should be true")
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`nmespace = "g"`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() should reject unknown keys")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadConfig() should fail for a missing file")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err == nil {
		t.Error("LoadConfig(\"\") should return an error")
	}
	if cfg == nil {
		t.Fatal("LoadConfig(\"\") should still return defaults")
	}
	if cfg.Namespace != "g" {
		t.Errorf("Namespace = %q, want default %q", cfg.Namespace, "g")
	}
}
