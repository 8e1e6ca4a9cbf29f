package adapters

import (
	"context"
	"os"

	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/outbound"
)

// localArtifactPublisher serves the assembled video straight from the
// public videos directory via the static route.
type localArtifactPublisher struct {
	logger  outbound.LoggerPort
	baseURL string
}

func NewLocalArtifactPublisher(baseURL string, logger outbound.LoggerPort) outbound.ArtifactPublisherPort {
	return &localArtifactPublisher{
		logger:  logger,
		baseURL: baseURL,
	}
}

func (l *localArtifactPublisher) Publish(_ context.Context, req outbound.PublishArtifactRequest) (string, error) {
	if _, err := os.Stat(req.FilePath); err != nil {
		l.logger.Error(err, "Assembled video file is missing")
		return "", err
	}
	return l.baseURL + "/static/videos/" + req.FileName, nil
}
