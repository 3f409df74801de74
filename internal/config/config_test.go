package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "warraq.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `document:
  title: "The Lighthouse"
  author: "Nadia Karim"
  tagline: "a story of the sea"
layout:
  lineWidth: 72
  alignment: "justify"
  chapterPageBreak: true
  direction: "rtl"
labels:
  contents: "Contents"
output:
  format: "html"
  path: "out.html"
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Document.Title != "The Lighthouse" {
			t.Errorf("Document.Title = %q", cfg.Document.Title)
		}
		if cfg.Layout.LineWidth != 72 {
			t.Errorf("Layout.LineWidth = %d, want 72", cfg.Layout.LineWidth)
		}
		if cfg.Layout.Alignment != "justify" {
			t.Errorf("Layout.Alignment = %q", cfg.Layout.Alignment)
		}
		if !cfg.Layout.ChapterPageBreak {
			t.Error("Layout.ChapterPageBreak = false, want true")
		}
		if cfg.Labels.Contents != "Contents" {
			t.Errorf("Labels.Contents = %q", cfg.Labels.Contents)
		}
		if cfg.Output.Format != "html" {
			t.Errorf("Output.Format = %q", cfg.Output.Format)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("malformed yaml returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, "document: [broken")
		_, err := Load(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("oversized field returns ErrFieldTooLong", func(t *testing.T) {
		path := writeConfig(t, "document:\n  title: \""+strings.Repeat("x", MaxTitleLength+1)+"\"\n")
		_, err := Load(path)
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})
}

func TestValidateZeroConfig(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Validate() on default config = %v", err)
	}
}
