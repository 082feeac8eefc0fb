package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"vidpress/internal/config"
	"vidpress/internal/logging"
	"vidpress/internal/pipeline"
)

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, err
	}
	if workDir, _ := cmd.Flags().GetString("workdir"); workDir != "" {
		cfg.WorkDir = workDir
	}
	if cmd.Flags().Changed("gap") {
		cfg.GapThreshold, _ = cmd.Flags().GetFloat64("gap")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, url string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.WorkDir, 0o755); err != nil {
		return fmt.Errorf("create working directory: %w", err)
	}

	// Exactly one run owns the working directory at a time.
	lock := flock.New(filepath.Join(cfg.WorkDir, "vidpress.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return errors.New("another vidpress run owns " + cfg.WorkDir)
	}
	defer lock.Unlock()

	ctx := context.Background()
	if cfg.TimeoutMinutes > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutMinutes)*time.Minute)
		defer cancel()
	}

	pcfg := pipeline.Config{
		URL:           url,
		WorkDir:       cfg.WorkDir,
		SubtitleLangs: cfg.SubtitleLangs,
		GapThreshold:  cfg.GapThreshold,
		PromptFile:    cfg.PromptFile,
		YtDlpPath:     cfg.YtDlpPath,
		FFmpegPath:    cfg.FFmpegPath,
		ClaudePath:    cfg.ClaudePath,
		Logger:        log,
	}
	if err := pcfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return pipeline.Run(ctx, log, pipeline.Steps(pcfg))
}
