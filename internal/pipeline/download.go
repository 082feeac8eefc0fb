package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"vidpress/internal/ports"
)

// DownloadStep fetches subtitles and then the video into the working
// directory.
type DownloadStep struct {
	url     string
	workDir string
	dl      ports.Downloader
}

func NewDownloadStep(url, workDir string, dl ports.Downloader) *DownloadStep {
	// Strip backslashes that shell escaping may add to the URL.
	return &DownloadStep{
		url:     strings.ReplaceAll(url, `\`, ""),
		workDir: workDir,
		dl:      dl,
	}
}

func (s *DownloadStep) Name() string { return "Download" }

func (s *DownloadStep) Execute(ctx context.Context) (string, error) {
	if err := os.MkdirAll(s.workDir, 0o755); err != nil {
		return "", fmt.Errorf("create working directory: %w", err)
	}

	subsPath, err := s.dl.DownloadSubtitles(ctx, s.url)
	if err != nil {
		return "", err
	}
	videoPath, err := s.dl.DownloadVideo(ctx, s.url)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("downloaded video to %s and subtitles to %s", videoPath, subsPath), nil
}
