package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"vidpress/internal/ports/adapters/claudecli"
	"vidpress/internal/segments"
)

// NormalizeStep rewrites the segment table in place: adjacent segments within
// the gap threshold are merged and chunk filenames assigned.
type NormalizeStep struct {
	workDir      string
	gapThreshold float64
}

func NewNormalizeStep(workDir string, gapThreshold float64) *NormalizeStep {
	return &NormalizeStep{workDir: workDir, gapThreshold: gapThreshold}
}

func (s *NormalizeStep) Name() string { return "Normalize" }

func (s *NormalizeStep) Execute(_ context.Context) (string, error) {
	tablePath := filepath.Join(s.workDir, claudecli.TableName)

	segs, err := segments.ReadTableFile(tablePath)
	if err != nil {
		return "", err
	}

	merged, err := segments.Normalize(segs, s.gapThreshold)
	if err != nil {
		return "", err
	}

	if err := segments.WriteTableFile(tablePath, merged); err != nil {
		return "", err
	}
	return fmt.Sprintf("normalized: %d -> %d segments (%d merged)", len(segs), len(merged), len(segs)-len(merged)), nil
}
