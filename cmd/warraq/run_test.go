package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	warraq "github.com/alkhatib/warraq"
	"github.com/alkhatib/warraq/internal/config"
	"github.com/alkhatib/warraq/internal/fileutil"
)

// writeNovel lays out a complete input tree in dir: intro.txt,
// conclusion.txt and 25 chapter files, returning the shared flag
// arguments pointing at them.
func writeNovel(t *testing.T, dir string) []string {
	t.Helper()
	chapterDir := filepath.Join(dir, "chapters")
	if err := os.Mkdir(chapterDir, 0o755); err != nil {
		t.Fatal(err)
	}
	write := func(path, text string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write(filepath.Join(dir, "intro.txt"), "It began, as these things do, quietly.")
	write(filepath.Join(dir, "conclusion.txt"), "And quietly it ended.")
	for i := 1; i <= warraq.RequiredChapters; i++ {
		write(filepath.Join(chapterDir, fmt.Sprintf("chapter%d.txt", i)),
			fmt.Sprintf("Chapter %d went on for a while.\n\nThen it stopped.", i))
	}
	return []string{
		"--intro", filepath.Join(dir, "intro.txt"),
		"--chapters-dir", chapterDir,
		"--conclusion", filepath.Join(dir, "conclusion.txt"),
	}
}

func TestRunMarkdown(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "novel.md")
	args := append(writeNovel(t, dir),
		"--title", "Quiet Things",
		"--author", "R. Haddad",
		"-o", out,
	)

	var stdout, stderr bytes.Buffer
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	text := string(data)
	for _, want := range []string{"Quiet Things", "by R. Haddad", "Table of Contents", "Chapter 25", "The End"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunHTML(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "novel.html")
	args := append(writeNovel(t, dir),
		"--title", "Quiet Things",
		"--author", "R. Haddad",
		"-f", "html",
		"-o", out,
	)

	var stdout, stderr bytes.Buffer
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "<title>Quiet Things</title>") {
		t.Error("html output missing title")
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "warraq.yaml")
	out := filepath.Join(dir, "out.md")
	cfgYAML := fmt.Sprintf(`document:
  title: Config Title
  author: Config Author
layout:
  lineWidth: 60
output:
  path: %s
`, out)
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	args := append(writeNovel(t, dir), "-c", cfgPath)

	var stdout, stderr bytes.Buffer
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "Config Title") {
		t.Error("config file title not used")
	}
}

func TestRunPages(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "pages")
	args := append(writeNovel(t, dir),
		"--title", "Quiet Things",
		"--author", "R. Haddad",
		"-f", "pages",
		"--page-width", "400", "--page-height", "500", "--page-margin", "40",
		"-o", out,
	)

	var stdout, stderr bytes.Buffer
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no pages written")
	}
	first := filepath.Join(out, "page-001.png")
	f, err := os.Open(first)
	if err != nil {
		t.Fatalf("opening %s: %v", first, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding %s: %v", first, err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 500 {
		t.Errorf("page bounds = %v", b)
	}
}

func TestEncodeWorkers(t *testing.T) {
	if got := encodeWorkers(0); got != 1 {
		t.Errorf("encodeWorkers(0) = %d, want 1", got)
	}
	if got := encodeWorkers(1); got != 1 {
		t.Errorf("encodeWorkers(1) = %d, want 1", got)
	}
	if got := encodeWorkers(1000); got > runtime.NumCPU() {
		t.Errorf("encodeWorkers(1000) = %d, exceeds CPU count", got)
	}
}

func TestRunMissingMetadata(t *testing.T) {
	dir := t.TempDir()
	args := writeNovel(t, dir)

	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	if !errors.Is(err, ErrMissingMetadata) {
		t.Errorf("error = %v, want ErrMissingMetadata", err)
	}
}

func TestRunChapterSourcesConflict(t *testing.T) {
	dir := t.TempDir()
	args := append(writeNovel(t, dir),
		"--title", "T", "--author", "A",
		"--chapter", filepath.Join(dir, "chapters", "chapter1.txt"),
	)

	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	if !errors.Is(err, ErrChapterSources) {
		t.Errorf("error = %v, want ErrChapterSources", err)
	}
}

func TestRunMissingInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--title", "T", "--author", "A"}, &stdout, &stderr)
	if !errors.Is(err, ErrMissingInput) {
		t.Errorf("error = %v, want ErrMissingInput", err)
	}
}

func TestRunUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	args := append(writeNovel(t, dir),
		"--title", "T", "--author", "A",
		"-f", "docx",
	)

	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("error = %v, want ErrUnknownFormat", err)
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"--version"}, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), Version) {
		t.Errorf("stdout = %q, want version", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"--help"}, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "--chapters-dir") {
		t.Error("usage text missing flags")
	}
}

func TestBuildSettingsPrecedence(t *testing.T) {
	fl, fs, err := parseFlags([]string{"--line-width", "100", "--align", "justify"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	cfg := config.DefaultConfig()
	cfg.Layout.LineWidth = 60
	cfg.Layout.Direction = "rtl"

	set := buildSettings(fl, fs, cfg)

	if set.layout.LineWidth != 100 {
		t.Errorf("LineWidth = %d, flag should beat config", set.layout.LineWidth)
	}
	if set.layout.Alignment != warraq.AlignJustify {
		t.Errorf("Alignment = %q", set.layout.Alignment)
	}
	if set.layout.Direction != warraq.DirectionRTL {
		t.Errorf("Direction = %q, config should beat default", set.layout.Direction)
	}
}

func TestBuildSettingsDefaultOutput(t *testing.T) {
	cases := []struct {
		format string
		want   string
	}{
		{"", defaultOutputStem + ".md"},
		{"markdown", defaultOutputStem + ".md"},
		{"html", defaultOutputStem + ".html"},
		{"pages", defaultOutputStem},
	}
	for _, tc := range cases {
		var args []string
		if tc.format != "" {
			args = []string{"-f", tc.format}
		}
		fl, fs, err := parseFlags(args)
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		set := buildSettings(fl, fs, config.DefaultConfig())
		if set.output != tc.want {
			t.Errorf("format %q: output = %q, want %q", tc.format, set.output, tc.want)
		}
	}
}

func TestBuildSettingsPagesGeometry(t *testing.T) {
	fl, fs, err := parseFlags([]string{"-f", "pages", "--page-width", "500", "--page-margin", "50"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	set := buildSettings(fl, fs, config.DefaultConfig())

	page := set.layout.Page
	if page == nil {
		t.Fatal("pages format did not select print geometry")
	}
	if page.Width != 500 {
		t.Errorf("Width = %d", page.Width)
	}
	if page.Height != warraq.DefaultPageHeight {
		t.Errorf("Height = %d, want default", page.Height)
	}
	if page.Margin != 50 {
		t.Errorf("Margin = %d", page.Margin)
	}
}

func TestExitCodeFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitGeneral},
		{"missing file", fmt.Errorf("open: %w", os.ErrNotExist), ExitIO},
		{"no chapters", fileutil.ErrNoChapterFiles, ExitIO},
		{"write failure", fmt.Errorf("%w: disk full", ErrWriteOutput), ExitIO},
		{"bad config", config.ErrConfigParse, ExitUsage},
		{"missing metadata", ErrMissingMetadata, ExitUsage},
		{"chapter count", fmt.Errorf("%w: got 3", warraq.ErrChapterCount), ExitUsage},
		{"bad alignment", warraq.ErrInvalidAlignment, ExitUsage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCodeFor(tc.err); got != tc.want {
				t.Errorf("exitCodeFor() = %d, want %d", got, tc.want)
			}
		})
	}
}
