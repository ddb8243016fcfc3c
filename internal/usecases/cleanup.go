package usecases

import (
	"context"
	"log"
	"time"

	domain "media-service/internal/domain/repositories"
)

// JobCleanupService purges transcode jobs that finished long enough ago.
// Terminal rows only exist for audit and duplicate-callback detection, so
// they can be dropped once their retention window passes.
type JobCleanupService interface {
	PurgeTerminalJobs(ctx context.Context, maxAge time.Duration) error
}

type jobCleanupService struct {
	jobs domain.TranscodeJobRepository
}

func NewJobCleanupService(jobs domain.TranscodeJobRepository) JobCleanupService {
	return &jobCleanupService{jobs: jobs}
}

func (s *jobCleanupService) PurgeTerminalJobs(ctx context.Context, maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge)
	removed, err := s.jobs.DeleteTerminalBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if removed > 0 {
		log.Printf("Purged %d terminal transcode jobs older than %s", removed, maxAge)
	}
	return nil
}
