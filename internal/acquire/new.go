package acquire

import (
	"github.com/nguyentantai21042004/meeting-flow/internal/config"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
	"github.com/nguyentantai21042004/meeting-flow/pkg/executor"
)

type implDownloader struct {
	binary   string
	format   string
	outDir   string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Downloader that shells out to yt-dlp
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Downloader {
	return &implDownloader{
		binary:   cfg.Download.BinaryPath,
		format:   cfg.Download.AudioFormat,
		outDir:   cfg.Paths.Downloads,
		executor: exec,
		logger:   log,
	}
}
