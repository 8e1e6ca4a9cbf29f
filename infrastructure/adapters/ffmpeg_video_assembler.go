package adapters

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/outbound"
	"github.com/faizurrehmandel/ai-video-generator-v1/domain"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type ffmpegVideoAssembler struct {
	logger  outbound.LoggerPort
	tempDir string
}

func NewFFmpegVideoAssembler(tempDir string, logger outbound.LoggerPort) outbound.VideoAssemblerPort {
	return &ffmpegVideoAssembler{
		logger:  logger,
		tempDir: tempDir,
	}
}

// Assemble renders one normalized clip per scene (muxing the narration
// audio when present), then joins the clips with the concat demuxer.
// Intermediate clips and the list file are the assembler's own and are
// removed here, not by the request-level registry.
func (f *ffmpegVideoAssembler) Assemble(assets []domain.SceneAsset, destPath string) error {
	if len(assets) == 0 {
		return errors.New("no scene assets to assemble")
	}

	base := strings.TrimSuffix(filepath.Base(destPath), filepath.Ext(destPath))

	clipPaths := make([]string, 0, len(assets))
	defer func() {
		for _, path := range clipPaths {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				f.logger.Error(err, "Failed to remove intermediate clip")
			}
		}
	}()

	for i, asset := range assets {
		clipPath := filepath.Join(f.tempDir, fmt.Sprintf("%s_clip_%d.mp4", base, i+1))
		clipPaths = append(clipPaths, clipPath)
		if err := f.renderClip(asset, clipPath); err != nil {
			f.logger.ErrorWithFields(err, "Failed to render scene clip", map[string]interface{}{
				"scene": i + 1,
			})
			return err
		}
	}

	listPath := filepath.Join(f.tempDir, base+"_concat.txt")
	if err := f.writeConcatList(clipPaths, listPath); err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(listPath); err != nil {
			f.logger.Error(err, "Failed to remove concat list file")
		}
	}()

	err := ffmpeg.Input(listPath, ffmpeg.KwArgs{"f": "concat", "safe": "0"}).
		Output(destPath, ffmpeg.KwArgs{"c": "copy"}).
		OverWriteOutput().
		Run()
	if err != nil {
		f.logger.Error(err, "Failed to concatenate scene clips")
		return err
	}

	return nil
}

func (f *ffmpegVideoAssembler) renderClip(asset domain.SceneAsset, clipPath string) error {
	video := ffmpeg.Input(asset.VideoPath)

	if asset.AudioPath == "" {
		return ffmpeg.Output([]*ffmpeg.Stream{video}, clipPath, ffmpeg.KwArgs{
			"c:v":    "libx264",
			"preset": "fast",
			"an":     "",
		}).OverWriteOutput().Run()
	}

	audio := ffmpeg.Input(asset.AudioPath)
	return ffmpeg.Output([]*ffmpeg.Stream{video, audio}, clipPath, ffmpeg.KwArgs{
		"c:v":      "libx264",
		"c:a":      "aac",
		"b:a":      "192k",
		"preset":   "fast",
		"shortest": "",
	}).OverWriteOutput().Run()
}

func (f *ffmpegVideoAssembler) writeConcatList(clipPaths []string, listPath string) error {
	fileList, err := os.Create(listPath)
	if err != nil {
		f.logger.Error(err, "Failed to create concat list file")
		return err
	}
	defer func() {
		if err := fileList.Close(); err != nil {
			f.logger.Error(err, "Failed to close concat list file")
		}
	}()

	writer := bufio.NewWriter(fileList)
	for _, path := range clipPaths {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if _, err := writer.WriteString("file '" + strings.ReplaceAll(abs, "'", `'\''`) + "'\n"); err != nil {
			f.logger.Error(err, "Failed to write to concat list file")
			return err
		}
	}
	return writer.Flush()
}
