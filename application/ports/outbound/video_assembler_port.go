package outbound

import (
	"github.com/faizurrehmandel/ai-video-generator-v1/domain"
)

// VideoAssemblerPort composites the per-scene assets, in order, into a
// single video file at destPath.
type VideoAssemblerPort interface {
	Assemble(assets []domain.SceneAsset, destPath string) error
}
