package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/indico/fieldkit/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Locale != DefaultLocale {
		t.Errorf("Locale = %q, want %q", cfg.Locale, DefaultLocale)
	}
	if cfg.Render.Indent != DefaultIndent {
		t.Errorf("Render.Indent = %q, want %q", cfg.Render.Indent, DefaultIndent)
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Metrics.Namespace = %q, want %q", cfg.Metrics.Namespace, DefaultNamespace)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// Test loading non-existent config
	_, err := Load(tmpDir)
	if !errors.HasCode(err, "F001") {
		t.Errorf("Load() error = %v, want F001", err)
	}

	writeConfig(t, tmpDir, `{
  "locale": "fr",
  "catalogs": ["extra.yaml", "/abs/other.yaml"],
  "render": {"pretty": true},
  "log": {"level": "DEBUG"}
}
`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Locale != "fr" {
		t.Errorf("Locale = %q, want fr", cfg.Locale)
	}
	if !cfg.Render.Pretty {
		t.Error("Render.Pretty = false, want true")
	}
	if cfg.Render.Indent != DefaultIndent {
		t.Errorf("Render.Indent = %q, want default", cfg.Render.Indent)
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("LogLevel() = %v, want debug", cfg.LogLevel())
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Metrics.Namespace = %q", cfg.Metrics.Namespace)
	}

	paths := cfg.CatalogPaths()
	if paths[0] != filepath.Join(tmpDir, "extra.yaml") {
		t.Errorf("CatalogPaths()[0] = %q", paths[0])
	}
	if paths[1] != "/abs/other.yaml" {
		t.Errorf("CatalogPaths()[1] = %q", paths[1])
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    string
	}{
		{"malformed json", `{"locale": `, "F002"},
		{"bad locale", `{"locale": "not a tag!"}`, "F003"},
		{"bad level", `{"log": {"level": "loud"}}`, "F003"},
		{"bad format", `{"log": {"format": "xml"}}`, "F003"},
		{"bad indent", `{"render": {"indent": "--"}}`, "F003"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			_, err := Load(dir)
			if !errors.HasCode(err, tt.code) {
				t.Errorf("Load() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestFindWalksParents(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"locale": "de"}`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Find(nested)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if cfg.Locale != "de" {
		t.Errorf("Locale = %q, want de", cfg.Locale)
	}
	if cfg.Dir() != root {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), root)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := New()
	cfg.Locale = "fr"
	cfg.FileTypes.Extensions = []string{"pdf"}

	if err := cfg.Save(); err == nil {
		t.Error("Save() without path succeeded")
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q", cfg.Path())
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if loaded.Locale != "fr" || len(loaded.FileTypes.Extensions) != 1 {
		t.Errorf("loaded = %+v", loaded)
	}
}
