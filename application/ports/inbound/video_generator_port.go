package inbound

import (
	"context"
)

type GenerateVideoParams struct {
	RequestID string
	Topic     string
}

type GenerateVideoResult struct {
	VideoURL string
}

// VideoGeneratorPort runs the whole topic-to-video pipeline for one
// request. Temporary files created along the way are removed before it
// returns, whatever the outcome.
type VideoGeneratorPort interface {
	Generate(ctx context.Context, params GenerateVideoParams) (*GenerateVideoResult, error)
}
