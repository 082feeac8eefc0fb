package ffmpeg

import (
	"context"
	"fmt"

	"vidpress/internal/ports"
)

type Adapter struct {
	bin    string
	runner ports.Runner
}

func New(ffmpegPath string, runner ports.Runner) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &Adapter{bin: ffmpegPath, runner: runner}
}

// Trim extracts [start, start+duration) from src into out without
// re-encoding. -avoid_negative_ts make_zero re-zeroes the chunk's timestamps
// so concatenation does not depend on source keyframe alignment.
func (a *Adapter) Trim(ctx context.Context, src, start, duration, out string) error {
	b, err := a.runner.Run(ctx, "", a.bin, trimArgs(src, start, duration, out)...)
	if err != nil {
		return fmt.Errorf("ffmpeg trim: %w\n%s", err, string(b))
	}
	return nil
}

// Concat merges the chunks listed in the manifest (concat demuxer syntax)
// into out, stream-copy.
func (a *Adapter) Concat(ctx context.Context, manifest, out string) error {
	b, err := a.runner.Run(ctx, "", a.bin, concatArgs(manifest, out)...)
	if err != nil {
		return fmt.Errorf("ffmpeg concat: %w\n%s", err, string(b))
	}
	return nil
}

func trimArgs(src, start, duration, out string) []string {
	return []string{
		"-y",
		"-ss", start,
		"-i", src,
		"-t", duration,
		"-c", "copy",
		"-avoid_negative_ts", "make_zero",
		out,
	}
}

func concatArgs(manifest, out string) []string {
	return []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", manifest,
		"-c", "copy",
		out,
	}
}
