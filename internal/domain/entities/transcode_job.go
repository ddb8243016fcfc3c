package entities

import (
	"time"

	"github.com/google/uuid"

	consts "media-service/pkg/constants"
)

type TranscodeJob struct {
	JobID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	BucketName string    `gorm:"type:varchar(255);not null"`
	Key        string    `gorm:"type:varchar(500);not null"`
	EpisodeID  string    `gorm:"type:varchar(255);not null;index"`
	BaseURL    string    `gorm:"type:varchar(500);not null"`
	// Seq is the per-episode submission order; completions for a
	// superseded seq are dropped.
	Seq       int64  `gorm:"not null"`
	Status    string `gorm:"type:varchar(20);not null"`
	ResultKey string `gorm:"type:varchar(500)"`
	LastError string `gorm:"type:varchar(500)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TranscodeJob) TableName() string {
	return "transcode_jobs"
}

func (j *TranscodeJob) IsTerminal() bool {
	switch j.Status {
	case consts.JobStatusCompleted, consts.JobStatusFailed, consts.JobStatusCancelled:
		return true
	}
	return false
}

// CanTransition enforces the forward-only lifecycle:
// submitted -> processing -> {completed, failed} and
// submitted/processing -> cancelled. Terminal states never move.
func (j *TranscodeJob) CanTransition(to string) bool {
	if j.IsTerminal() {
		return false
	}
	switch j.Status {
	case consts.JobStatusSubmitted:
		return to == consts.JobStatusProcessing ||
			to == consts.JobStatusCancelled ||
			to == consts.JobStatusFailed
	case consts.JobStatusProcessing:
		return to == consts.JobStatusCompleted ||
			to == consts.JobStatusFailed ||
			to == consts.JobStatusCancelled
	}
	return false
}
