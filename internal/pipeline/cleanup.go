package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// cleanupExts are the artifact kinds a previous run may have left behind.
var cleanupExts = []string{".mp4", ".csv", ".srt", ".vtt"}

// CleanupStep removes leftover artifacts from the working directory.
type CleanupStep struct {
	workDir string
}

func NewCleanupStep(workDir string) *CleanupStep {
	return &CleanupStep{workDir: workDir}
}

func (s *CleanupStep) Name() string { return "Cleanup" }

func (s *CleanupStep) Execute(_ context.Context) (string, error) {
	entries, err := os.ReadDir(s.workDir)
	if errors.Is(err, fs.ErrNotExist) {
		return "working directory does not exist, nothing to clean", nil
	}
	if err != nil {
		return "", fmt.Errorf("read working directory: %w", err)
	}

	var removed []string
	for _, e := range entries {
		if e.IsDir() || !hasCleanupExt(e.Name()) {
			continue
		}
		if err := os.Remove(filepath.Join(s.workDir, e.Name())); err != nil {
			return "", fmt.Errorf("remove %s: %w", e.Name(), err)
		}
		removed = append(removed, e.Name())
	}

	if len(removed) == 0 {
		return "no files to clean up", nil
	}
	return "removed: " + strings.Join(removed, ", "), nil
}

func hasCleanupExt(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range cleanupExts {
		if ext == e {
			return true
		}
	}
	return false
}
