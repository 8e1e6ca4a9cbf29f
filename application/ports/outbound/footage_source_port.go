package outbound

import "context"

type FetchFootageRequest struct {
	Keywords string
	DestPath string
}

// FootageSourcePort downloads stock footage matching the keywords to
// DestPath.
type FootageSourcePort interface {
	Fetch(ctx context.Context, req FetchFootageRequest) error
}
