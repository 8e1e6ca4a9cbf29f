package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/donovanhide/eventsource"
	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/outbound"
	"github.com/faizurrehmandel/ai-video-generator-v1/config"
	"github.com/faizurrehmandel/ai-video-generator-v1/domain"
)

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string `json:"response_mime_type"`
}

type geminiChunkBody struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiScriptGenerator struct {
	logger       outbound.LoggerPort
	geminiConfig *config.GeminiConfig
	workerPool   outbound.TaskDispatcher
}

func NewGeminiScriptGenerator(geminiConfig *config.GeminiConfig, workerPool outbound.TaskDispatcher, logger outbound.LoggerPort) outbound.ScriptGeneratorPort {
	return &geminiScriptGenerator{
		logger:       logger,
		geminiConfig: geminiConfig,
		workerPool:   workerPool,
	}
}

func (g *geminiScriptGenerator) Generate(ctx context.Context, topic string) ([]domain.Scene, error) {
	out, errCh := g.streamScript(ctx, topic)

	var builder strings.Builder
	for chunk := range out {
		builder.WriteString(chunk)
	}
	if err := <-errCh; err != nil {
		return nil, err
	}

	return parseScenes(builder.String())
}

// streamScript subscribes to the Gemini SSE endpoint and emits the text
// chunks as they arrive. The stream ends with EOF once the model has
// finished the script.
func (g *geminiScriptGenerator) streamScript(ctx context.Context, topic string) (<-chan string, <-chan error) {
	out := make(chan string)
	errCh := make(chan error, 1)

	newCtx, cancel := context.WithCancel(ctx)

	err := g.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		defer cancel()
		req, err := g.createRequest(ctx, topic)
		if err != nil {
			g.logger.Error(err, "Failed to create HTTP request for script stream")
			errCh <- err
			return
		}

		stream, err := eventsource.SubscribeWithRequest("", req)
		if err != nil {
			g.logger.Error(err, "Failed to subscribe to script stream")
			errCh <- err
			return
		}
		for {
			select {
			case <-newCtx.Done():
				return
			case ev := <-stream.Events:
				payload, err := g.extractPayload(ev)
				if err != nil {
					errCh <- err
					return
				}
				if payload != "" {
					out <- payload
				}
			case err := <-stream.Errors:
				if err == io.EOF {
					g.logger.Debug("Script stream closed")
					return
				}
				g.logger.Error(err, "Error occurred during script streaming")
				errCh <- err
				return
			}
		}
	})
	if err != nil {
		g.logger.Error(err, "Failed to submit task to worker pool")
		errCh <- err
		close(out)
		close(errCh)
	}

	return out, errCh
}

func (g *geminiScriptGenerator) extractPayload(event eventsource.Event) (string, error) {
	var chunkBody geminiChunkBody
	err := json.Unmarshal([]byte(event.Data()), &chunkBody)
	if err != nil {
		g.logger.Error(err, "Failed to unmarshal event data")
		return "", err
	}
	if len(chunkBody.Candidates) == 0 {
		return "", nil
	}

	var builder strings.Builder
	for _, part := range chunkBody.Candidates[0].Content.Parts {
		builder.WriteString(part.Text)
	}
	return builder.String(), nil
}

func (g *geminiScriptGenerator) createRequest(ctx context.Context, topic string) (*http.Request, error) {
	prompt := fmt.Sprintf("Write a short documentary-style video script about: %s.\n"+
		"Respond with a JSON array only. Each element is one scene with exactly two string fields:\n"+
		"- \"narration\": one or two spoken sentences for the voiceover\n"+
		"- \"keywords\": two to four comma-separated stock footage search terms\n"+
		"Use between 3 and 5 scenes. Do not include any text outside the JSON array.", topic)

	promptReq := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
		},
	}

	payloadBytes, err := json.Marshal(promptReq)
	if err != nil {
		g.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse",
		g.geminiConfig.ApiUrl, g.geminiConfig.Model)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		g.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	req.Header.Set("x-goog-api-key", g.geminiConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
