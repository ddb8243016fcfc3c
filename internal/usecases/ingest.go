package usecases

import (
	"bytes"
	"context"
	goerrors "errors"
	"fmt"
	"log"

	"media-service/internal/domain/entities"
	domain "media-service/internal/domain/repositories"
	"media-service/internal/infrastructure/queue"
	consts "media-service/pkg/constants"
	"media-service/pkg/errors"
	"media-service/pkg/file"
)

// FileProcessingService executes accepted uploads on the worker pool: it
// persists the object and reconciles the resulting reference into the
// content registry according to the destination.
type FileProcessingService interface {
	queue.TaskExecutor
}

type fileProcessingService struct {
	gateway    domain.StorageGateway
	registry   domain.ContentRegistry
	dispatcher TranscodeDispatcher
}

func NewFileProcessingService(
	gateway domain.StorageGateway,
	registry domain.ContentRegistry,
	dispatcher TranscodeDispatcher,
) FileProcessingService {
	return &fileProcessingService{
		gateway:    gateway,
		registry:   registry,
		dispatcher: dispatcher,
	}
}

func (s *fileProcessingService) Execute(ctx context.Context, task queue.FileProcessingTask) error {
	switch task.Destination {
	case entities.DestinationContentImageURL:
		return s.processContentImage(ctx, task)
	case entities.DestinationEpisodeVideoURL:
		return s.processEpisodeVideo(ctx, task)
	default:
		return s.store(ctx, task)
	}
}

// store persists the task bytes. The object must be durably stored before
// any registry write happens.
func (s *fileProcessingService) store(ctx context.Context, task queue.FileProcessingTask) error {
	err := s.gateway.PutObject(ctx, task.BucketName, task.Key, task.ContentType, bytes.NewReader(task.FileContent))
	if err != nil {
		if isBucketNotFound(err) {
			return errors.ErrBucketNotFound(task.BucketName)
		}
		return errors.ErrStorage("Failed to upload file", err)
	}
	return nil
}

func (s *fileProcessingService) processContentImage(ctx context.Context, task queue.FileProcessingTask) error {
	if err := s.store(ctx, task); err != nil {
		return err
	}
	log.Printf("Content image uploaded: %s/%s", task.BucketName, task.Key)

	contentID := file.KeySegment(task.Key, 0)
	url := task.BaseURL + "/" + task.Key

	if err := s.registry.SetContentImageURL(ctx, contentID, url); err != nil {
		// The object stays in place; reconciliation is retried by
		// re-uploading, never rolled back.
		return errors.ErrRegistry(fmt.Sprintf("Failed to set thumbnail for content %s", contentID), err)
	}
	return nil
}

func (s *fileProcessingService) processEpisodeVideo(ctx context.Context, task queue.FileProcessingTask) error {
	episodeID := file.KeySegment(task.Key, 1)

	if err := s.registry.SetEpisodeVideoURL(ctx, episodeID, "", consts.FileStatusInProgress); err != nil {
		return errors.ErrRegistry(fmt.Sprintf("Failed to mark episode %s as in progress", episodeID), err)
	}

	if err := s.store(ctx, task); err != nil {
		if regErr := s.registry.SetEpisodeVideoURL(ctx, episodeID, "", consts.FileStatusError); regErr != nil {
			log.Printf("Failed to mark episode %s as errored: %v", episodeID, regErr)
		}
		return err
	}
	log.Printf("Episode video uploaded: %s/%s", task.BucketName, task.Key)

	if !task.Process {
		url := task.BaseURL + "/" + task.Key
		if err := s.registry.SetEpisodeVideoURL(ctx, episodeID, url, consts.FileStatusUploaded); err != nil {
			return errors.ErrRegistry(fmt.Sprintf("Failed to set video url for episode %s", episodeID), err)
		}
		return nil
	}

	// The episode stays in progress until the chunker completion callback
	// delivers the HLS manifest key.
	if _, err := s.dispatcher.Submit(ctx, task.BucketName, task.Key, episodeID, task.BaseURL); err != nil {
		return err
	}
	return nil
}

func isBucketNotFound(err error) bool {
	return goerrors.Is(err, domain.ErrBucketNotFound)
}
