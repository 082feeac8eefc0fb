// Package cutter extracts each segment of the source video as a stream-copied
// chunk and concatenates the chunks into the final output.
package cutter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"vidpress/internal/ports"
	"vidpress/internal/segments"
	"vidpress/internal/timecode"
)

const (
	// ManifestName is the ffmpeg concat-demuxer manifest written next to the
	// chunks.
	ManifestName = "concat.txt"
	// OutputName is the final merged file, created in the working directory.
	OutputName = "compressed.mp4"
)

var (
	ErrSourceNotFound = errors.New("source video not found")
	ErrEmptyTable     = errors.New("segment table is empty")
)

// CutError reports a failed chunk extraction. Index is the 0-based position
// of the segment in the table. Chunks produced before the failure are left on
// disk for inspection.
type CutError struct {
	Index int
	Err   error
}

func (e *CutError) Error() string {
	return fmt.Sprintf("cut segment %d: %v", e.Index, e.Err)
}

func (e *CutError) Unwrap() error { return e.Err }

// MergeError reports a failed concatenation. Chunks and manifest are left on
// disk for inspection.
type MergeError struct {
	Err error
}

func (e *MergeError) Error() string { return fmt.Sprintf("merge segments: %v", e.Err) }

func (e *MergeError) Unwrap() error { return e.Err }

type Cutter struct {
	video   ports.VideoTool
	workDir string
	log     *slog.Logger
}

func New(video ports.VideoTool, workDir string, log *slog.Logger) *Cutter {
	return &Cutter{video: video, workDir: workDir, log: log}
}

// Cut extracts every segment of the table from source into its assigned chunk
// file, merges the chunks in table order, deletes the intermediates, and
// returns the output path.
//
// Failure handling is deliberately asymmetric: intermediates are only removed
// after a fully successful merge, so a partial run leaves its artifacts for
// post-mortem inspection.
func (c *Cutter) Cut(ctx context.Context, source string, segs []segments.Segment) (string, error) {
	if _, err := os.Stat(source); err != nil {
		return "", fmt.Errorf("%w: %s", ErrSourceNotFound, source)
	}
	if len(segs) == 0 {
		return "", ErrEmptyTable
	}
	for i, seg := range segs {
		if seg.File == "" {
			return "", fmt.Errorf("segment %d has no assigned chunk filename (table not normalized?)", i)
		}
	}

	chunks := make([]string, 0, len(segs))
	for i, seg := range segs {
		dur, err := timecode.Duration(seg.Start, seg.End)
		if err != nil {
			return "", &CutError{Index: i, Err: err}
		}
		chunk := filepath.Join(c.workDir, seg.File)
		if err := c.video.Trim(ctx, source, seg.Start, timecode.Format(dur), chunk); err != nil {
			return "", &CutError{Index: i, Err: err}
		}
		chunks = append(chunks, chunk)
		c.log.Info("cut segment", "index", i+1, "total", len(segs), "chunk", seg.File)
	}

	manifest := filepath.Join(c.workDir, ManifestName)
	if err := writeManifest(manifest, segs); err != nil {
		return "", err
	}

	output := filepath.Join(c.workDir, OutputName)
	if err := c.video.Concat(ctx, manifest, output); err != nil {
		return "", &MergeError{Err: err}
	}

	for _, chunk := range chunks {
		if err := os.Remove(chunk); err != nil {
			return "", fmt.Errorf("remove chunk: %w", err)
		}
	}
	if err := os.Remove(manifest); err != nil {
		return "", fmt.Errorf("remove manifest: %w", err)
	}
	return output, nil
}

// writeManifest lists chunks by bare filename; the manifest lives in the same
// directory, so concat resolves them relative to itself.
func writeManifest(path string, segs []segments.Segment) error {
	var b strings.Builder
	for _, seg := range segs {
		fmt.Fprintf(&b, "file '%s'\n", seg.File)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
