package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vidpress/internal/cutter"
	"vidpress/internal/segments"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordedStep struct {
	name string
	err  error
	ran  *[]string
}

func (s recordedStep) Name() string { return s.name }

func (s recordedStep) Execute(_ context.Context) (string, error) {
	*s.ran = append(*s.ran, s.name)
	return "ok", s.err
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	var ran []string
	steps := []Step{
		recordedStep{name: "one", ran: &ran},
		recordedStep{name: "two", err: errors.New("boom"), ran: &ran},
		recordedStep{name: "three", ran: &ran},
	}

	err := Run(context.Background(), discard(), steps)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "two") || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("error should name step and cause: %v", err)
	}
	if len(ran) != 2 {
		t.Fatalf("steps run = %v, want first two only", ran)
	}
}

func TestRun_AllSucceed(t *testing.T) {
	var ran []string
	steps := []Step{
		recordedStep{name: "a", ran: &ran},
		recordedStep{name: "b", ran: &ran},
	}
	if err := Run(context.Background(), discard(), steps); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(ran) != 2 {
		t.Fatalf("steps run = %v", ran)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		URL:           "https://example.com/watch?v=x",
		WorkDir:       "data",
		SubtitleLangs: []string{"en"},
		GapThreshold:  3,
		PromptFile:    "PROMPT.md",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty url", func(c *Config) { c.URL = "  " }},
		{"empty workdir", func(c *Config) { c.WorkDir = "" }},
		{"no langs", func(c *Config) { c.SubtitleLangs = nil }},
		{"negative gap", func(c *Config) { c.GapThreshold = -1 }},
		{"no prompt", func(c *Config) { c.PromptFile = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCleanupStep(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"video.mp4", "video.csv", "subtitles.srt", "subtitles.vtt", "keep.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	msg, err := NewCleanupStep(dir).Execute(context.Background())
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if !strings.Contains(msg, "video.mp4") {
		t.Fatalf("message should list removed files: %q", msg)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "keep.txt" {
		t.Fatalf("unexpected survivors: %v", entries)
	}
}

func TestCleanupStep_MissingDirIsSuccess(t *testing.T) {
	step := NewCleanupStep(filepath.Join(t.TempDir(), "nope"))
	if _, err := step.Execute(context.Background()); err != nil {
		t.Fatalf("cleanup of missing dir should succeed: %v", err)
	}
}

type fakeDownloader struct {
	subsErr  error
	videoErr error
	urls     []string
}

func (f *fakeDownloader) DownloadSubtitles(_ context.Context, url string) (string, error) {
	f.urls = append(f.urls, url)
	return "subtitles.srt", f.subsErr
}

func (f *fakeDownloader) DownloadVideo(_ context.Context, url string) (string, error) {
	f.urls = append(f.urls, url)
	return "video.mp4", f.videoErr
}

func TestDownloadStep_StripsBackslashes(t *testing.T) {
	dl := &fakeDownloader{}
	step := NewDownloadStep(`https://example.com/watch\?v\=abc`, t.TempDir(), dl)

	if _, err := step.Execute(context.Background()); err != nil {
		t.Fatalf("download: %v", err)
	}
	if dl.urls[0] != "https://example.com/watch?v=abc" {
		t.Fatalf("url not unescaped: %q", dl.urls[0])
	}
}

func TestDownloadStep_SubtitleFailureStopsBeforeVideo(t *testing.T) {
	dl := &fakeDownloader{subsErr: errors.New("no subs")}
	step := NewDownloadStep("u", t.TempDir(), dl)

	if _, err := step.Execute(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(dl.urls) != 1 {
		t.Fatalf("video download should not run after subtitle failure, calls=%d", len(dl.urls))
	}
}

type fakeAnalyzer struct {
	prompt  string
	workDir string
	err     error
	called  bool
}

func (f *fakeAnalyzer) Analyze(_ context.Context, workDir, prompt string) error {
	f.called = true
	f.workDir = workDir
	f.prompt = prompt
	return f.err
}

func TestAnalyzeStep(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "subtitles.srt"), []byte("1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	promptFile := filepath.Join(dir, "PROMPT.md")
	if err := os.WriteFile(promptFile, []byte("keep the substance"), 0o644); err != nil {
		t.Fatal(err)
	}

	an := &fakeAnalyzer{}
	if _, err := NewAnalyzeStep(dir, promptFile, an).Execute(context.Background()); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if an.workDir != dir || an.prompt != "keep the substance" {
		t.Fatalf("analyzer called with %q %q", an.workDir, an.prompt)
	}
}

func TestAnalyzeStep_RequiresSubtitles(t *testing.T) {
	dir := t.TempDir()
	promptFile := filepath.Join(dir, "PROMPT.md")
	if err := os.WriteFile(promptFile, []byte("p"), 0o644); err != nil {
		t.Fatal(err)
	}

	an := &fakeAnalyzer{}
	if _, err := NewAnalyzeStep(dir, promptFile, an).Execute(context.Background()); err == nil {
		t.Fatal("expected error without subtitles")
	}
	if an.called {
		t.Fatal("analyzer must not run without subtitles")
	}
}

func TestAnalyzeStep_RequiresPromptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "subtitles.srt"), []byte("1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	an := &fakeAnalyzer{}
	step := NewAnalyzeStep(dir, filepath.Join(dir, "missing.md"), an)
	if _, err := step.Execute(context.Background()); err == nil {
		t.Fatal("expected error without prompt file")
	}
}

func TestNormalizeStep_RewritesTableInPlace(t *testing.T) {
	dir := t.TempDir()
	tablePath := filepath.Join(dir, "video.csv")
	in := []segments.Segment{
		{Start: "00:00:00", End: "00:00:10", Description: "a"},
		{Start: "00:00:12", End: "00:00:20", Description: "b"},
		{Start: "00:00:30", End: "00:00:35", Description: "c"},
	}
	if err := segments.WriteTableFile(tablePath, in); err != nil {
		t.Fatal(err)
	}

	msg, err := NewNormalizeStep(dir, 3.0).Execute(context.Background())
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !strings.Contains(msg, "3 -> 2") {
		t.Fatalf("unexpected message: %q", msg)
	}

	out, err := segments.ReadTableFile(tablePath)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].File != "0001.mp4" || out[0].Description != "a; b" {
		t.Fatalf("unexpected table: %+v", out)
	}
}

func TestNormalizeStep_MissingTable(t *testing.T) {
	if _, err := NewNormalizeStep(t.TempDir(), 3.0).Execute(context.Background()); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestCutStep(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SourceVideoName), []byte("src"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := segments.WriteTableFile(filepath.Join(dir, "video.csv"), []segments.Segment{
		{Start: "00:00:00", End: "00:00:10", File: "0001.mp4", Description: "a"},
	}); err != nil {
		t.Fatal(err)
	}

	cut := cutter.New(chunkingVideoTool{}, dir, discard())
	msg, err := NewCutStep(dir, cut).Execute(context.Background())
	if err != nil {
		t.Fatalf("cut step: %v", err)
	}
	if !strings.Contains(msg, "compressed.mp4") || !strings.Contains(msg, "1 segments") {
		t.Fatalf("unexpected message: %q", msg)
	}
	if _, err := os.Stat(filepath.Join(dir, "compressed.mp4")); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

// chunkingVideoTool writes the files ffmpeg would.
type chunkingVideoTool struct{}

func (chunkingVideoTool) Trim(_ context.Context, _, _, _, out string) error {
	return os.WriteFile(out, []byte("chunk"), 0o644)
}

func (chunkingVideoTool) Concat(_ context.Context, _, out string) error {
	return os.WriteFile(out, []byte("merged"), 0o644)
}
