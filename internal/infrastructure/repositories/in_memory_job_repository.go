package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"media-service/internal/domain/entities"
	domain "media-service/internal/domain/repositories"
)

// InMemoryJobRepository is the test/local counterpart of the gorm-backed
// repository.
type InMemoryJobRepository struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]entities.TranscodeJob
}

func NewInMemoryJobRepository() *InMemoryJobRepository {
	return &InMemoryJobRepository{
		jobs: make(map[uuid.UUID]entities.TranscodeJob),
	}
}

func (r *InMemoryJobRepository) Create(ctx context.Context, job *entities.TranscodeJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	if job.UpdatedAt.IsZero() {
		job.UpdatedAt = now
	}
	r.jobs[job.JobID] = *job
	return nil
}

func (r *InMemoryJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (*entities.TranscodeJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[jobID]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	copied := job
	return &copied, nil
}

func (r *InMemoryJobRepository) Save(ctx context.Context, job *entities.TranscodeJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job.UpdatedAt = time.Now()
	r.jobs[job.JobID] = *job
	return nil
}

func (r *InMemoryJobRepository) DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, job := range r.jobs {
		if job.IsTerminal() && job.UpdatedAt.Before(cutoff) {
			delete(r.jobs, id)
			removed++
		}
	}
	return removed, nil
}

func (r *InMemoryJobRepository) LatestSeq(ctx context.Context, episodeID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest int64
	for _, job := range r.jobs {
		if job.EpisodeID == episodeID && job.Seq > latest {
			latest = job.Seq
		}
	}
	return latest, nil
}
