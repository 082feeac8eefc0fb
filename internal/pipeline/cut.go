package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"vidpress/internal/cutter"
	"vidpress/internal/ports/adapters/claudecli"
	"vidpress/internal/segments"
)

// SourceVideoName is the downloaded source file the cutter reads.
const SourceVideoName = "video.mp4"

// CutStep turns the normalized table and the source video into the final
// output.
type CutStep struct {
	workDir string
	cut     *cutter.Cutter
}

func NewCutStep(workDir string, cut *cutter.Cutter) *CutStep {
	return &CutStep{workDir: workDir, cut: cut}
}

func (s *CutStep) Name() string { return "Cut" }

func (s *CutStep) Execute(ctx context.Context) (string, error) {
	segs, err := segments.ReadTableFile(filepath.Join(s.workDir, claudecli.TableName))
	if err != nil {
		return "", err
	}

	out, err := s.cut.Cut(ctx, filepath.Join(s.workDir, SourceVideoName), segs)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("created %s from %d segments", filepath.Base(out), len(segs)), nil
}
