package adapters

import (
	"context"
	"fmt"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/outbound"
	"github.com/faizurrehmandel/ai-video-generator-v1/config"
	"github.com/faizurrehmandel/ai-video-generator-v1/domain"
)

// cohereScriptGenerator is the fallback script provider, used when no
// Gemini key is configured.
type cohereScriptGenerator struct {
	logger outbound.LoggerPort
	client *cohereclient.Client
	model  string
}

func NewCohereScriptGenerator(cohereConfig *config.CohereConfig, logger outbound.LoggerPort) outbound.ScriptGeneratorPort {
	client := cohereclient.NewClient(cohereclient.WithToken(cohereConfig.ApiKey))
	return &cohereScriptGenerator{
		logger: logger,
		client: client,
		model:  cohereConfig.Model,
	}
}

func (c *cohereScriptGenerator) Generate(ctx context.Context, topic string) ([]domain.Scene, error) {
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Model:   &c.model,
		Message: c.prompt(topic),
	})
	if err != nil {
		c.logger.Error(err, "Cohere chat request failed")
		return nil, err
	}

	return parseScenes(resp.Text)
}

func (c *cohereScriptGenerator) prompt(topic string) string {
	return fmt.Sprintf("Write a short documentary-style video script about: %s.\n"+
		"Respond with a JSON array only. Each element is one scene with exactly two string fields:\n"+
		"- \"narration\": one or two spoken sentences for the voiceover\n"+
		"- \"keywords\": two to four comma-separated stock footage search terms\n"+
		"Use between 3 and 5 scenes. Do not include any text outside the JSON array.", topic)
}
