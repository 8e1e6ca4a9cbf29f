package mock_services

import (
	"context"
	"os"

	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/outbound"
)

type stubFootageSource struct {
	logger outbound.LoggerPort
}

func NewStubFootageSource(logger outbound.LoggerPort) outbound.FootageSourcePort {
	return &stubFootageSource{
		logger: logger,
	}
}

func (s *stubFootageSource) Fetch(_ context.Context, req outbound.FetchFootageRequest) error {
	s.logger.DebugWithFields("stub footage source invoked", map[string]interface{}{
		"keywords": req.Keywords,
		"path":     req.DestPath,
	})
	return os.WriteFile(req.DestPath, []byte("stub footage: "+req.Keywords), 0644)
}
