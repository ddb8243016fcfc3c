package repositories

import (
	"context"

	"media-service/internal/domain/dto"
)

// ChunkerClient hands videos to the external chunker worker. Dispatch is
// fire-and-forget; completion arrives later as a ProcessVideoCallback.
type ChunkerClient interface {
	ProcessVideo(ctx context.Context, job dto.ProcessVideoJob) error
	CancelVideoProcessing(ctx context.Context, cancel dto.CancelVideoJob) error
}
