package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"vidpress/internal/ports"
	"vidpress/internal/ports/adapters/claudecli"
)

// AnalyzeStep runs the AI collaborator over the downloaded subtitles to
// produce the segment table.
type AnalyzeStep struct {
	workDir    string
	promptFile string
	analyzer   ports.Analyzer
}

func NewAnalyzeStep(workDir, promptFile string, analyzer ports.Analyzer) *AnalyzeStep {
	return &AnalyzeStep{workDir: workDir, promptFile: promptFile, analyzer: analyzer}
}

func (s *AnalyzeStep) Name() string { return "Analyze" }

func (s *AnalyzeStep) Execute(ctx context.Context) (string, error) {
	matches, err := filepath.Glob(filepath.Join(s.workDir, "subtitles.*"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no subtitles file found in %s", s.workDir)
	}

	prompt, err := os.ReadFile(s.promptFile)
	if err != nil {
		return "", fmt.Errorf("read prompt file: %w", err)
	}

	if err := s.analyzer.Analyze(ctx, s.workDir, string(prompt)); err != nil {
		return "", err
	}
	return fmt.Sprintf("analysis complete, table saved to %s", filepath.Join(s.workDir, claudecli.TableName)), nil
}
