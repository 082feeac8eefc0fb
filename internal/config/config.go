// Package config holds run configuration: working directory, subtitle
// language preferences, merge threshold, external binary paths.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	// WorkDir is the shared working directory every stage operates in.
	WorkDir string `toml:"work_dir"`
	// SubtitleLangs is the ordered language preference list for downloads.
	SubtitleLangs []string `toml:"subtitle_langs"`
	// GapThreshold is the maximum gap in seconds between two segments for
	// them to be merged.
	GapThreshold float64 `toml:"gap_threshold"`
	// PromptFile is the analysis prompt handed to the AI CLI.
	PromptFile string `toml:"prompt_file"`
	// TimeoutMinutes bounds the whole pipeline run. 0 means no timeout.
	TimeoutMinutes int `toml:"timeout_minutes"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	YtDlpPath  string `toml:"ytdlp_path"`
	FFmpegPath string `toml:"ffmpeg_path"`
	ClaudePath string `toml:"claude_path"`
}

const (
	defaultWorkDir        = "data"
	defaultGapThreshold   = 3.0
	defaultPromptFile     = "PROMPT.md"
	defaultTimeoutMinutes = 180
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
)

// Default returns the repository defaults.
func Default() Config {
	return Config{
		WorkDir:        defaultWorkDir,
		SubtitleLangs:  []string{"ru", "en"},
		GapThreshold:   defaultGapThreshold,
		PromptFile:     defaultPromptFile,
		TimeoutMinutes: defaultTimeoutMinutes,
		LogLevel:       defaultLogLevel,
		LogFormat:      defaultLogFormat,
		YtDlpPath:      "yt-dlp",
		FFmpegPath:     "ffmpeg",
		ClaudePath:     "claude",
	}
}

// Load reads path over the defaults. A missing file is not an error: the
// defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.WorkDir == "" {
		return errors.New("work_dir is empty")
	}
	if len(c.SubtitleLangs) == 0 {
		return errors.New("subtitle_langs is empty")
	}
	if c.GapThreshold < 0 {
		return fmt.Errorf("gap_threshold must be >= 0, got %v", c.GapThreshold)
	}
	if c.PromptFile == "" {
		return errors.New("prompt_file is empty")
	}
	if c.TimeoutMinutes < 0 {
		return fmt.Errorf("timeout_minutes must be >= 0, got %d", c.TimeoutMinutes)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format: unsupported value %q", c.LogFormat)
	}
	return nil
}
