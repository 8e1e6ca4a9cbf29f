package config

import (
	"os"
	"path/filepath"
)

// MediaConfig holds the two filesystem roots: VideoDir keeps the
// persisted output artifacts, TempDir the per-request intermediates.
type MediaConfig struct {
	VideoDir string
	TempDir  string
}

func GetMediaConfig() *MediaConfig {
	videoDir := os.Getenv("VIDEO_DIR")
	if videoDir == "" {
		videoDir = filepath.Join("static", "videos")
	}
	tempDir := os.Getenv("TEMP_DIR")
	if tempDir == "" {
		tempDir = filepath.Join("static", "temp")
	}
	return &MediaConfig{
		VideoDir: videoDir,
		TempDir:  tempDir,
	}
}
