package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/outbound"
	"github.com/faizurrehmandel/ai-video-generator-v1/config"
)

type ElevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelId       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type elevenLabsSynthesizer struct {
	ContentFetcher
	logger           outbound.LoggerPort
	elevenLabsConfig *config.ElevenLabsConfig
}

func NewElevenLabsSynthesizer(contentFetcher ContentFetcher, elevenLabsConfig *config.ElevenLabsConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &elevenLabsSynthesizer{
		ContentFetcher:   contentFetcher,
		logger:           logger,
		elevenLabsConfig: elevenLabsConfig,
	}
}

func (a *elevenLabsSynthesizer) Synthesize(ctx context.Context, synthesizeReq outbound.SynthesizeSpeechRequest) error {
	req, err := a.getRequest(ctx, synthesizeReq.Text)
	if err != nil {
		a.logger.Error(err, "Failed to construct the HTTP request for audio synthesis")
		return err
	}

	payload, err := a.FetchContent(req)
	if err != nil {
		return err
	}

	if err := os.WriteFile(synthesizeReq.DestPath, payload, 0644); err != nil {
		a.logger.ErrorWithFields(err, "Failed to write synthesized audio", map[string]interface{}{
			"path": synthesizeReq.DestPath,
		})
		return err
	}

	return nil
}

func (a *elevenLabsSynthesizer) getRequest(ctx context.Context, text string) (*http.Request, error) {
	reqBody := ElevenLabsRequest{
		Text:    text,
		ModelId: a.elevenLabsConfig.ModelId,
		VoiceSettings: VoiceSettings{
			Stability:       a.elevenLabsConfig.Stability,
			SimilarityBoost: a.elevenLabsConfig.SimilarityBoost,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		a.logger.Error(err, "Failed to marshal the request body for the ElevenLabs API")
		return nil, err
	}

	url := a.elevenLabsConfig.ApiUrl + "/" + a.elevenLabsConfig.VoiceID
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to create the HTTP POST request", map[string]interface{}{
			"URL": url,
		})
		return nil, err
	}

	req.Header.Add("Accept", "audio/mpeg")
	req.Header.Add("xi-api-key", a.elevenLabsConfig.ApiKey)
	req.Header.Add("Content-Type", "application/json")

	return req, nil
}
