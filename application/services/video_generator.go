package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/inbound"
	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/outbound"
	"github.com/faizurrehmandel/ai-video-generator-v1/domain"
)

type videoGenerator struct {
	logger          outbound.LoggerPort
	scriptGenerator outbound.ScriptGeneratorPort
	synthesizer     outbound.SpeechSynthesizerPort
	footageSource   outbound.FootageSourcePort
	assembler       outbound.VideoAssemblerPort
	publisher       outbound.ArtifactPublisherPort
	tempDir         string
	videoDir        string
}

func NewVideoGenerator(
	logger outbound.LoggerPort,
	scriptGenerator outbound.ScriptGeneratorPort,
	synthesizer outbound.SpeechSynthesizerPort,
	footageSource outbound.FootageSourcePort,
	assembler outbound.VideoAssemblerPort,
	publisher outbound.ArtifactPublisherPort,
	tempDir string,
	videoDir string) inbound.VideoGeneratorPort {
	return &videoGenerator{
		logger:          logger,
		scriptGenerator: scriptGenerator,
		synthesizer:     synthesizer,
		footageSource:   footageSource,
		assembler:       assembler,
		publisher:       publisher,
		tempDir:         tempDir,
		videoDir:        videoDir,
	}
}

// Generate runs the pipeline in strict order: script, per-scene assets,
// assembly, publish. Every temp path is registered before the call that
// writes it, and the deferred cleanup drains the registry on all exit
// paths.
func (v *videoGenerator) Generate(ctx context.Context, params inbound.GenerateVideoParams) (*inbound.GenerateVideoResult, error) {
	tempFiles := domain.NewTempFileSet()
	defer v.cleanup(params.RequestID, tempFiles)

	scenes, err := v.scriptGenerator.Generate(ctx, params.Topic)
	if err != nil {
		v.logger.ErrorWithFields(err, "failed to generate script", map[string]interface{}{
			"request_id": params.RequestID,
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrScriptGenerationFailed, err)
	}
	if len(scenes) == 0 {
		return nil, fmt.Errorf("%w: script contains no scenes", domain.ErrScriptGenerationFailed)
	}
	v.logger.InfoWithFields("script generated", map[string]interface{}{
		"request_id": params.RequestID,
		"scenes":     len(scenes),
	})

	assets := make([]domain.SceneAsset, 0, len(scenes))
	for i, scene := range scenes {
		sceneNum := i + 1

		audioPath := ""
		if strings.TrimSpace(scene.Narration) != "" {
			audioPath = filepath.Join(v.tempDir, fmt.Sprintf("%s_scene_%d.mp3", params.RequestID, sceneNum))
			tempFiles.Add(audioPath)
			err = v.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechRequest{
				Text:     scene.Narration,
				DestPath: audioPath,
			})
			if err != nil {
				v.logger.ErrorWithFields(err, "failed to synthesize narration", map[string]interface{}{
					"request_id": params.RequestID,
					"scene":      sceneNum,
				})
				return nil, fmt.Errorf("%w: audio for scene %d: %v", domain.ErrAssetAcquisitionFailed, sceneNum, err)
			}
		} else {
			v.logger.WarnWithFields("scene has no narration, skipping audio generation", map[string]interface{}{
				"request_id": params.RequestID,
				"scene":      sceneNum,
			})
		}

		if strings.TrimSpace(scene.Keywords) == "" {
			return nil, fmt.Errorf("%w: scene %d", domain.ErrMissingSceneKeywords, sceneNum)
		}

		videoPath := filepath.Join(v.tempDir, fmt.Sprintf("%s_scene_%d.mp4", params.RequestID, sceneNum))
		tempFiles.Add(videoPath)
		err = v.footageSource.Fetch(ctx, outbound.FetchFootageRequest{
			Keywords: scene.Keywords,
			DestPath: videoPath,
		})
		if err != nil {
			v.logger.ErrorWithFields(err, "failed to fetch footage", map[string]interface{}{
				"request_id": params.RequestID,
				"scene":      sceneNum,
			})
			return nil, fmt.Errorf("%w: footage for scene %d: %v", domain.ErrAssetAcquisitionFailed, sceneNum, err)
		}

		assets = append(assets, domain.SceneAsset{
			VideoPath: videoPath,
			AudioPath: audioPath,
		})
	}

	outputName := params.RequestID + ".mp4"
	outputPath := filepath.Join(v.videoDir, outputName)
	err = v.assembler.Assemble(assets, outputPath)
	if err != nil {
		v.logger.ErrorWithFields(err, "failed to assemble final video", map[string]interface{}{
			"request_id": params.RequestID,
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrAssemblyFailed, err)
	}

	videoURL, err := v.publisher.Publish(ctx, outbound.PublishArtifactRequest{
		RequestID: params.RequestID,
		FilePath:  outputPath,
		FileName:  outputName,
	})
	if err != nil {
		v.logger.ErrorWithFields(err, "failed to publish final video", map[string]interface{}{
			"request_id": params.RequestID,
		})
		return nil, fmt.Errorf("%w: publish: %v", domain.ErrAssemblyFailed, err)
	}

	v.logger.InfoWithFields("final video created", map[string]interface{}{
		"request_id": params.RequestID,
		"video_url":  videoURL,
	})

	return &inbound.GenerateVideoResult{VideoURL: videoURL}, nil
}

// cleanup deletes every registered temp path. A missing or unremovable
// file is logged and skipped, never surfaced to the caller.
func (v *videoGenerator) cleanup(requestID string, tempFiles *domain.TempFileSet) {
	if tempFiles.Len() == 0 {
		return
	}
	v.logger.InfoWithFields("cleaning up temporary files", map[string]interface{}{
		"request_id": requestID,
		"count":      tempFiles.Len(),
	})
	for _, path := range tempFiles.Paths() {
		err := os.Remove(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			v.logger.WarnWithFields("failed to remove temp file", map[string]interface{}{
				"request_id": requestID,
				"path":       path,
				"error":      err.Error(),
			})
			continue
		}
		v.logger.DebugWithFields("removed temp file", map[string]interface{}{
			"request_id": requestID,
			"path":       path,
		})
	}
}
