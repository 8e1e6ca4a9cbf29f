package outbound

import (
	"context"

	"github.com/faizurrehmandel/ai-video-generator-v1/domain"
)

// ScriptGeneratorPort turns a topic into an ordered sequence of scenes.
type ScriptGeneratorPort interface {
	Generate(ctx context.Context, topic string) ([]domain.Scene, error)
}
