// Package ytdlp downloads the source video and subtitles via yt-dlp.
package ytdlp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"vidpress/internal/ports"
)

type Adapter struct {
	bin     string
	workDir string
	langs   []string
	runner  ports.Runner
	log     *slog.Logger
}

func New(ytdlpPath, workDir string, langs []string, runner ports.Runner, log *slog.Logger) *Adapter {
	if ytdlpPath == "" {
		ytdlpPath = "yt-dlp"
	}
	return &Adapter{bin: ytdlpPath, workDir: workDir, langs: langs, runner: runner, log: log}
}

// DownloadSubtitles tries each preferred language in order, manual subtitles
// before auto-generated ones, and renames the first hit to
// subtitles.srt/.vtt. yt-dlp's exit code is unreliable for subtitle-only
// runs, so success is judged by the files it leaves behind.
func (a *Adapter) DownloadSubtitles(ctx context.Context, url string) (string, error) {
	for _, lang := range a.langs {
		for _, auto := range []bool{false, true} {
			path, ok, err := a.trySubtitles(ctx, url, lang, auto)
			if err != nil {
				return "", err
			}
			if ok {
				a.log.Info("subtitles downloaded", "lang", lang, "auto", auto, "path", path)
				return path, nil
			}
		}
		a.log.Info("no subtitles for language, trying next", "lang", lang)
	}
	return "", fmt.Errorf("no subtitles found in any of: %v", a.langs)
}

func (a *Adapter) trySubtitles(ctx context.Context, url, lang string, auto bool) (string, bool, error) {
	subFlag := "--write-sub"
	if auto {
		subFlag = "--write-auto-sub"
	}
	args := []string{
		"--skip-download",
		subFlag,
		"--sub-lang", lang,
		"--convert-subs", "srt",
		"-o", filepath.Join(a.workDir, "subtitles"),
		url,
	}
	// Exit code deliberately ignored.
	if _, err := a.runner.Run(ctx, "", a.bin, args...); err != nil && ctx.Err() != nil {
		return "", false, ctx.Err()
	}

	// yt-dlp writes subtitles.<lang>[.variant].srt (or .vtt when conversion
	// is unavailable).
	for _, ext := range []string{".srt", ".vtt"} {
		matches, err := filepath.Glob(filepath.Join(a.workDir, "subtitles."+lang+"*"+ext))
		if err != nil {
			return "", false, err
		}
		if len(matches) == 0 {
			continue
		}
		dst := filepath.Join(a.workDir, "subtitles"+ext)
		if err := os.Rename(matches[0], dst); err != nil {
			return "", false, err
		}
		return dst, true, nil
	}
	return "", false, nil
}

// DownloadVideo downloads the best mp4-compatible streams merged into
// video.mp4.
func (a *Adapter) DownloadVideo(ctx context.Context, url string) (string, error) {
	out := filepath.Join(a.workDir, "video.mp4")
	args := []string{
		"-f", "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best",
		"--merge-output-format", "mp4",
		"-o", out,
		url,
	}
	b, err := a.runner.Run(ctx, "", a.bin, args...)
	if err != nil {
		return "", fmt.Errorf("yt-dlp download video: %w\n%s", err, string(b))
	}
	if _, err := os.Stat(out); err != nil {
		return "", fmt.Errorf("yt-dlp reported success but %s was not created", out)
	}
	return out, nil
}
