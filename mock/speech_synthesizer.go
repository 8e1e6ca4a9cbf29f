package mock_services

import (
	"context"
	"os"

	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/outbound"
)

type stubSpeechSynthesizer struct {
	logger outbound.LoggerPort
}

func NewStubSpeechSynthesizer(logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &stubSpeechSynthesizer{
		logger: logger,
	}
}

// Synthesize writes a placeholder file to DestPath so that downstream
// steps and cleanup see the same filesystem shape as the real adapter.
func (s *stubSpeechSynthesizer) Synthesize(_ context.Context, req outbound.SynthesizeSpeechRequest) error {
	s.logger.DebugWithFields("stub speech synthesizer invoked", map[string]interface{}{
		"path": req.DestPath,
	})
	return os.WriteFile(req.DestPath, []byte("stub audio: "+req.Text), 0644)
}
