package acquire

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Download extracts the best audio stream of url into the downloads folder
// and returns the newest audio file found there.
func (d *implDownloader) Download(ctx context.Context, url string) (string, error) {
	if strings.TrimSpace(url) == "" {
		return "", fmt.Errorf("download: empty url")
	}
	if err := os.MkdirAll(d.outDir, 0755); err != nil {
		return "", fmt.Errorf("create downloads dir: %w", err)
	}

	d.logger.Info(ctx, "Downloading audio: %s", url)

	args := []string{
		"-f", "bestaudio/best",
		"--extract-audio",
		"--audio-format", d.format,
		"-o", filepath.Join(d.outDir, "%(title)s.%(ext)s"),
		url,
	}
	if _, err := d.executor.Execute(ctx, d.binary, args...); err != nil {
		return "", fmt.Errorf("yt-dlp download: %w", err)
	}

	path, err := newestAudio(d.outDir, "."+d.format)
	if err != nil {
		return "", err
	}

	d.logger.Info(ctx, "Downloaded: %s", filepath.Base(path))
	return path, nil
}

// newestAudio picks the most recently modified file with ext in dir.
func newestAudio(dir, ext string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read downloads dir: %w", err)
	}

	var (
		best     string
		bestTime time.Time
	)
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if best == "" || info.ModTime().After(bestTime) {
			best = filepath.Join(dir, e.Name())
			bestTime = info.ModTime()
		}
	}

	if best == "" {
		return "", fmt.Errorf("no %s file in %s: %w", ext, dir, ErrAudioNotFound)
	}
	return best, nil
}
