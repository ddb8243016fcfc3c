package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"media-service/internal/domain/entities"
	domain "media-service/internal/domain/repositories"
	consts "media-service/pkg/constants"
)

type TranscodeJobRepository struct {
	db *gorm.DB
}

func NewTranscodeJobRepository(db *gorm.DB) *TranscodeJobRepository {
	return &TranscodeJobRepository{db: db}
}

func (r *TranscodeJobRepository) Create(ctx context.Context, job *entities.TranscodeJob) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create transcode job: %w", err)
	}
	return nil
}

func (r *TranscodeJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (*entities.TranscodeJob, error) {
	var job entities.TranscodeJob
	err := r.db.WithContext(ctx).First(&job, "job_id = ?", jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get transcode job: %w", err)
	}
	return &job, nil
}

func (r *TranscodeJobRepository) Save(ctx context.Context, job *entities.TranscodeJob) error {
	if err := r.db.WithContext(ctx).Save(job).Error; err != nil {
		return fmt.Errorf("failed to save transcode job: %w", err)
	}
	return nil
}

func (r *TranscodeJobRepository) DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status IN ?", []string{
			consts.JobStatusCompleted,
			consts.JobStatusFailed,
			consts.JobStatusCancelled,
		}).
		Where("updated_at < ?", cutoff).
		Delete(&entities.TranscodeJob{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge terminal jobs: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TranscodeJobRepository) LatestSeq(ctx context.Context, episodeID string) (int64, error) {
	var seq int64
	err := r.db.WithContext(ctx).
		Model(&entities.TranscodeJob{}).
		Where("episode_id = ?", episodeID).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&seq).Error
	if err != nil {
		return 0, fmt.Errorf("failed to query latest seq: %w", err)
	}
	return seq, nil
}
