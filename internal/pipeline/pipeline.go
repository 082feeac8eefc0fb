// Package pipeline wires the stages together and runs them in strict
// sequence, stopping at the first failure.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"vidpress/internal/cutter"
	"vidpress/internal/ports"
	"vidpress/internal/ports/adapters/claudecli"
	"vidpress/internal/ports/adapters/execrunner"
	"vidpress/internal/ports/adapters/ffmpeg"
	"vidpress/internal/ports/adapters/ytdlp"
)

// Step is one pipeline stage. Execute returns a human-readable success
// message or the error that stops the run.
type Step interface {
	Name() string
	Execute(ctx context.Context) (string, error)
}

// Run executes steps in order. The first failure aborts the run and is
// returned wrapped with the step name.
func Run(ctx context.Context, log *slog.Logger, steps []Step) error {
	for _, step := range steps {
		sl := log.With("step", step.Name())
		sl.Info("starting")
		msg, err := step.Execute(ctx)
		if err != nil {
			sl.Error("failed", "error", err)
			return fmt.Errorf("%s: %w", step.Name(), err)
		}
		sl.Info("done", "message", msg)
	}
	log.Info("pipeline completed")
	return nil
}

// Config carries everything the standard pipeline needs.
type Config struct {
	URL           string
	WorkDir       string
	SubtitleLangs []string
	GapThreshold  float64
	PromptFile    string

	YtDlpPath  string
	FFmpegPath string
	ClaudePath string

	Logger *slog.Logger
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.URL) == "" {
		return errors.New("url is empty")
	}
	if c.WorkDir == "" {
		return errors.New("work dir is empty")
	}
	if len(c.SubtitleLangs) == 0 {
		return errors.New("subtitle languages are empty")
	}
	if c.GapThreshold < 0 {
		return errors.New("gap threshold must be >= 0")
	}
	if c.PromptFile == "" {
		return errors.New("prompt file is empty")
	}
	return nil
}

// Steps builds the standard five-stage pipeline over real adapters.
func Steps(cfg Config) []Step {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	var runner ports.Runner = execrunner.New()
	dl := ytdlp.New(cfg.YtDlpPath, cfg.WorkDir, cfg.SubtitleLangs, runner, log)
	analyzer := claudecli.New(cfg.ClaudePath, runner)
	video := ffmpeg.New(cfg.FFmpegPath, runner)
	cut := cutter.New(video, cfg.WorkDir, log)

	return []Step{
		NewCleanupStep(cfg.WorkDir),
		NewDownloadStep(cfg.URL, cfg.WorkDir, dl),
		NewAnalyzeStep(cfg.WorkDir, cfg.PromptFile, analyzer),
		NewNormalizeStep(cfg.WorkDir, cfg.GapThreshold),
		NewCutStep(cfg.WorkDir, cut),
	}
}
