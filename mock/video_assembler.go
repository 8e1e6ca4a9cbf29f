package mock_services

import (
	"io"
	"os"

	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/outbound"
	"github.com/faizurrehmandel/ai-video-generator-v1/domain"
)

type stubVideoAssembler struct {
	logger outbound.LoggerPort
}

func NewStubVideoAssembler(logger outbound.LoggerPort) outbound.VideoAssemblerPort {
	return &stubVideoAssembler{
		logger: logger,
	}
}

// Assemble concatenates the raw scene files into destPath. Not a
// playable video, but it produces a real artifact with content from
// every scene, which is enough when ffmpeg is unavailable.
func (s *stubVideoAssembler) Assemble(assets []domain.SceneAsset, destPath string) error {
	out, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			s.logger.Error(err, "failed to close stub artifact")
		}
	}()

	for _, asset := range assets {
		in, err := os.Open(asset.VideoPath)
		if err != nil {
			return err
		}
		_, err = io.Copy(out, in)
		if closeErr := in.Close(); closeErr != nil {
			s.logger.Error(closeErr, "failed to close scene file")
		}
		if err != nil {
			return err
		}
	}

	return nil
}
