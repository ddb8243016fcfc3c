package usecases

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"media-service/internal/domain/dto"
	"media-service/internal/domain/entities"
	domain "media-service/internal/domain/repositories"
	consts "media-service/pkg/constants"
	"media-service/pkg/errors"
)

// TranscodeDispatcher submits stored videos to the external chunker worker
// and reconciles its out-of-band completions into the content registry.
type TranscodeDispatcher interface {
	Submit(ctx context.Context, bucketName, key, episodeID, baseURL string) (uuid.UUID, error)
	OnCompletion(ctx context.Context, callback dto.ProcessVideoCallback) error
	Cancel(ctx context.Context, jobID uuid.UUID) error
}

type episodeLock struct {
	mu   sync.Mutex
	refs int
}

type transcodeDispatcher struct {
	jobs     domain.TranscodeJobRepository
	chunker  domain.ChunkerClient
	registry domain.ContentRegistry

	mu           sync.Mutex
	episodeLocks map[string]*episodeLock
}

func NewTranscodeDispatcher(
	jobs domain.TranscodeJobRepository,
	chunker domain.ChunkerClient,
	registry domain.ContentRegistry,
) TranscodeDispatcher {
	return &transcodeDispatcher{
		jobs:         jobs,
		chunker:      chunker,
		registry:     registry,
		episodeLocks: make(map[string]*episodeLock),
	}
}

// lockEpisode serializes job mutation and registry writes per episode, so
// concurrent completions for unrelated episodes never wait on each other.
// Locks are refcounted and dropped from the map once the last holder
// releases, so the map only holds episodes with in-flight work.
func (d *transcodeDispatcher) lockEpisode(episodeID string) func() {
	d.mu.Lock()
	lock, ok := d.episodeLocks[episodeID]
	if !ok {
		lock = &episodeLock{}
		d.episodeLocks[episodeID] = lock
	}
	lock.refs++
	d.mu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()

		d.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(d.episodeLocks, episodeID)
		}
		d.mu.Unlock()
	}
}

func (d *transcodeDispatcher) Submit(ctx context.Context, bucketName, key, episodeID, baseURL string) (uuid.UUID, error) {
	unlock := d.lockEpisode(episodeID)
	defer unlock()

	latest, err := d.jobs.LatestSeq(ctx, episodeID)
	if err != nil {
		return uuid.Nil, errors.ErrDispatch("Failed to submit video for processing", err)
	}

	job := &entities.TranscodeJob{
		JobID:      uuid.New(),
		BucketName: bucketName,
		Key:        key,
		EpisodeID:  episodeID,
		BaseURL:    baseURL,
		Seq:        latest + 1,
		Status:     consts.JobStatusSubmitted,
	}
	if err := d.jobs.Create(ctx, job); err != nil {
		return uuid.Nil, errors.ErrDispatch("Failed to submit video for processing", err)
	}

	if err := d.chunker.ProcessVideo(ctx, dto.ProcessVideoJob{
		JobID:      job.JobID.String(),
		BucketName: bucketName,
		Key:        key,
		BaseURL:    baseURL,
	}); err != nil {
		job.Status = consts.JobStatusFailed
		job.LastError = err.Error()
		if saveErr := d.jobs.Save(ctx, job); saveErr != nil {
			log.Printf("Failed to mark job %s as failed: %v", job.JobID, saveErr)
		}
		if regErr := d.registry.SetEpisodeVideoURL(ctx, episodeID, "", consts.FileStatusError); regErr != nil {
			log.Printf("Failed to revert episode %s status after dispatch failure: %v", episodeID, regErr)
		}
		return uuid.Nil, errors.ErrDispatch("Failed to dispatch video to chunker", err)
	}

	job.Status = consts.JobStatusProcessing
	if err := d.jobs.Save(ctx, job); err != nil {
		return uuid.Nil, errors.ErrDispatch("Failed to submit video for processing", err)
	}

	log.Printf("Transcode job %s dispatched for episode %s (%s/%s)", job.JobID, episodeID, bucketName, key)
	return job.JobID, nil
}

func (d *transcodeDispatcher) OnCompletion(ctx context.Context, callback dto.ProcessVideoCallback) error {
	jobID, err := uuid.Parse(callback.JobID)
	if err != nil {
		return errors.ErrValidation(fmt.Sprintf("Invalid job id '%s'", callback.JobID))
	}

	job, err := d.jobs.GetByID(ctx, jobID)
	if err != nil {
		if err == domain.ErrJobNotFound {
			return errors.ErrJobNotFound(callback.JobID)
		}
		return errors.ErrInternal("Failed to load transcode job", err)
	}

	unlock := d.lockEpisode(job.EpisodeID)
	defer unlock()

	// Re-read under the lock; a concurrent completion or cancel may have
	// finished the job already.
	job, err = d.jobs.GetByID(ctx, jobID)
	if err != nil {
		return errors.ErrInternal("Failed to load transcode job", err)
	}

	if job.IsTerminal() {
		log.Printf("Ignoring completion for job %s already in state %s", job.JobID, job.Status)
		return nil
	}

	latest, err := d.jobs.LatestSeq(ctx, job.EpisodeID)
	if err != nil {
		return errors.ErrInternal("Failed to order completion", err)
	}
	if job.Seq < latest {
		// A newer upload superseded this job; its result must not
		// overwrite the newer one.
		log.Printf("Ignoring completion for superseded job %s (seq %d < %d)", job.JobID, job.Seq, latest)
		job.Status = consts.JobStatusCancelled
		job.LastError = "superseded by a newer upload"
		if err := d.jobs.Save(ctx, job); err != nil {
			return errors.ErrInternal("Failed to save transcode job", err)
		}
		return nil
	}

	if callback.Error != "" {
		job.Status = consts.JobStatusFailed
		job.LastError = callback.Error
		if err := d.jobs.Save(ctx, job); err != nil {
			return errors.ErrInternal("Failed to save transcode job", err)
		}
		return d.reconcile(ctx, job.EpisodeID, "", consts.FileStatusError)
	}

	job.Status = consts.JobStatusCompleted
	job.ResultKey = callback.Key
	if err := d.jobs.Save(ctx, job); err != nil {
		return errors.ErrInternal("Failed to save transcode job", err)
	}

	baseURL := callback.BaseURL
	if baseURL == "" {
		baseURL = job.BaseURL
	}
	return d.reconcile(ctx, job.EpisodeID, baseURL+"/"+callback.Key, consts.FileStatusUploaded)
}

func (d *transcodeDispatcher) reconcile(ctx context.Context, episodeID, url, status string) error {
	err := d.registry.SetEpisodeVideoURL(ctx, episodeID, url, status)
	if err == nil {
		return nil
	}
	if err == domain.ErrEpisodeNotFound {
		// The episode was deleted while its video was processing.
		log.Printf("Episode %s no longer exists, dropping transcode result", episodeID)
		return nil
	}
	return errors.ErrRegistry("Failed to update episode video url", err)
}

func (d *transcodeDispatcher) Cancel(ctx context.Context, jobID uuid.UUID) error {
	job, err := d.jobs.GetByID(ctx, jobID)
	if err != nil {
		if err == domain.ErrJobNotFound {
			return errors.ErrJobNotFound(jobID.String())
		}
		return errors.ErrInternal("Failed to load transcode job", err)
	}

	unlock := d.lockEpisode(job.EpisodeID)
	defer unlock()

	job, err = d.jobs.GetByID(ctx, jobID)
	if err != nil {
		return errors.ErrInternal("Failed to load transcode job", err)
	}

	if !job.CanTransition(consts.JobStatusCancelled) {
		return errors.ErrValidation(fmt.Sprintf("Job %s is already %s", jobID, job.Status))
	}

	job.Status = consts.JobStatusCancelled
	if err := d.jobs.Save(ctx, job); err != nil {
		return errors.ErrInternal("Failed to save transcode job", err)
	}

	// Best effort: the worker may ignore this and finish anyway, but the
	// cancelled job drops any late completion.
	if err := d.chunker.CancelVideoProcessing(ctx, dto.CancelVideoJob{JobID: jobID.String()}); err != nil {
		log.Printf("Failed to forward cancel for job %s: %v", jobID, err)
	}
	return nil
}
