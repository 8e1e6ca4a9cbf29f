package adapters

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/faizurrehmandel/ai-video-generator-v1/domain"
)

type sceneJSON struct {
	Narration string `json:"narration"`
	Keywords  string `json:"keywords"`
}

// parseScenes decodes the model output into an ordered scene list.
// Models occasionally wrap the JSON in markdown fences or surrounding
// prose, so the array is located before decoding.
func parseScenes(raw string) ([]domain.Scene, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if !strings.HasPrefix(cleaned, "[") {
		start := strings.Index(cleaned, "[")
		end := strings.LastIndex(cleaned, "]")
		if start == -1 || end == -1 || end < start {
			return nil, errors.New("script output does not contain a JSON array")
		}
		cleaned = cleaned[start : end+1]
	}

	var decoded []sceneJSON
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode script scenes: %v", err)
	}
	if len(decoded) == 0 {
		return nil, errors.New("script contains no scenes")
	}

	scenes := make([]domain.Scene, 0, len(decoded))
	for i, s := range decoded {
		scenes = append(scenes, domain.Scene{
			Narration: s.Narration,
			Keywords:  s.Keywords,
			Index:     i + 1,
		})
	}
	return scenes, nil
}
