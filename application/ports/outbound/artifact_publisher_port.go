package outbound

import "context"

type PublishArtifactRequest struct {
	RequestID string
	FilePath  string
	FileName  string
}

// ArtifactPublisherPort makes the assembled video reachable by clients
// and returns its public URL.
type ArtifactPublisherPort interface {
	Publish(ctx context.Context, req PublishArtifactRequest) (string, error)
}
