// Package ports defines the collaborator interfaces the pipeline core is
// written against. Real adapters shell out to yt-dlp, ffmpeg, and the claude
// CLI; tests substitute fakes.
package ports

import "context"

// Runner executes one external command and returns its combined output.
// dir sets the working directory; empty means inherit.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// VideoTool performs lossless (stream-copy) cutting operations.
type VideoTool interface {
	// Trim extracts [start, start+duration) from src into out, re-zeroing
	// output timestamps. start and duration are HH:MM:SS.mmm strings.
	Trim(ctx context.Context, src, start, duration, out string) error
	// Concat merges the chunks listed in the manifest file into out.
	Concat(ctx context.Context, manifest, out string) error
}

// Downloader fetches the source video and its subtitles into the working
// directory.
type Downloader interface {
	DownloadSubtitles(ctx context.Context, url string) (path string, err error)
	DownloadVideo(ctx context.Context, url string) (path string, err error)
}

// Analyzer turns subtitles into a segment table on disk. The contract is
// "run, then the table file must exist": the collaborator owns the table's
// content.
type Analyzer interface {
	Analyze(ctx context.Context, workDir, prompt string) error
}
