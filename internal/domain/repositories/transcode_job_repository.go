package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"media-service/internal/domain/entities"
)

var ErrJobNotFound = errors.New("transcode job not found")

type TranscodeJobRepository interface {
	Create(ctx context.Context, job *entities.TranscodeJob) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*entities.TranscodeJob, error)
	Save(ctx context.Context, job *entities.TranscodeJob) error
	// LatestSeq returns the highest submission seq for an episode, 0 when
	// the episode has no jobs yet.
	LatestSeq(ctx context.Context, episodeID string) (int64, error)
	// DeleteTerminalBefore removes completed/failed/cancelled jobs last
	// touched before cutoff and reports how many were removed.
	DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
