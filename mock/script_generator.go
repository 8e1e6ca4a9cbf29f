package mock_services

import (
	"context"

	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/outbound"
	"github.com/faizurrehmandel/ai-video-generator-v1/domain"
)

// stubScriptGenerator stands in when no script provider is configured.
// It returns a fixed two-scene script built around the topic so the
// rest of the pipeline can be exercised without credentials.
type stubScriptGenerator struct {
	logger outbound.LoggerPort
}

func NewStubScriptGenerator(logger outbound.LoggerPort) outbound.ScriptGeneratorPort {
	return &stubScriptGenerator{
		logger: logger,
	}
}

func (s *stubScriptGenerator) Generate(_ context.Context, topic string) ([]domain.Scene, error) {
	s.logger.InfoWithFields("stub script generator invoked", map[string]interface{}{
		"topic": topic,
	})
	return []domain.Scene{
		{
			Narration: "Here is a brief introduction to " + topic + ".",
			Keywords:  "establishing shot, landscape",
			Index:     1,
		},
		{
			Narration: "And that concludes our look at " + topic + ".",
			Keywords:  "sunset, closing shot",
			Index:     2,
		},
	}, nil
}
