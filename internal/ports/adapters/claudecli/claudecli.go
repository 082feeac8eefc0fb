// Package claudecli invokes the claude CLI as the segment-analysis
// collaborator.
package claudecli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"vidpress/internal/ports"
)

// TableName is the segment table the analysis run must produce in the
// working directory.
const TableName = "video.csv"

type Adapter struct {
	bin    string
	runner ports.Runner
}

func New(claudePath string, runner ports.Runner) *Adapter {
	if claudePath == "" {
		claudePath = "claude"
	}
	return &Adapter{bin: claudePath, runner: runner}
}

// Analyze runs the prompt with workDir as cwd so the assistant reads the
// subtitles and writes the table in place. The run only counts as successful
// once video.csv exists.
func (a *Adapter) Analyze(ctx context.Context, workDir, prompt string) error {
	b, err := a.runner.Run(ctx, workDir, a.bin,
		"--dangerously-skip-permissions",
		"-p", prompt,
	)
	if err != nil {
		return fmt.Errorf("claude analysis: %w\n%s", err, string(b))
	}
	if _, err := os.Stat(filepath.Join(workDir, TableName)); err != nil {
		return fmt.Errorf("claude analysis did not create %s", TableName)
	}
	return nil
}
