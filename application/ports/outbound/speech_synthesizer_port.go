package outbound

import "context"

type SynthesizeSpeechRequest struct {
	Text     string
	DestPath string
}

// SpeechSynthesizerPort writes narration audio to DestPath.
type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeSpeechRequest) error
}
