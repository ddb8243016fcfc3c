package usecases

import (
	"context"
	goerrors "errors"

	"media-service/internal/domain/dto"
	"media-service/internal/domain/entities"
	domain "media-service/internal/domain/repositories"
	"media-service/internal/infrastructure/queue"
	"media-service/pkg/errors"
	"media-service/pkg/file"
)

// TaskQueue is what the bucket service needs from the worker pool.
type TaskQueue interface {
	Enqueue(task queue.FileProcessingTask)
}

type CreateFileRequest struct {
	BucketName  string
	Prefix      string
	FileName    string
	ContentType string
	FileContent []byte
	Destination entities.Destination
	Process     bool
	BaseURL     string
}

type UpdateFileRequest struct {
	BucketName  string
	Key         string
	ContentType string
	FileContent []byte
	Destination entities.Destination
	Process     bool
	BaseURL     string
}

type BucketService interface {
	GetBuckets(ctx context.Context) ([]dto.BucketResponse, error)
	CreateBucket(ctx context.Context, bucketName string) (*dto.BucketResponse, error)
	DeleteBucket(ctx context.Context, bucketName string) error

	GetFiles(ctx context.Context, bucketName, prefix string) ([]dto.FileInfoResponse, error)
	CreateFile(ctx context.Context, req *CreateFileRequest) (*dto.UploadFileResponse, error)
	UpdateFile(ctx context.Context, req *UpdateFileRequest) (*dto.UploadFileResponse, error)
	GetFile(ctx context.Context, bucketName, key string) (*domain.FileData, error)
	DeleteFile(ctx context.Context, bucketName, key string) error
}

type bucketService struct {
	gateway domain.StorageGateway
	tasks   TaskQueue
}

func NewBucketService(gateway domain.StorageGateway, tasks TaskQueue) BucketService {
	return &bucketService{
		gateway: gateway,
		tasks:   tasks,
	}
}

func (s *bucketService) GetBuckets(ctx context.Context) ([]dto.BucketResponse, error) {
	names, err := s.gateway.ListBuckets(ctx)
	if err != nil {
		return nil, errors.ErrInternal("Failed to get buckets", err)
	}

	buckets := make([]dto.BucketResponse, 0, len(names))
	for _, name := range names {
		buckets = append(buckets, dto.BucketResponse{Name: name})
	}
	return buckets, nil
}

func (s *bucketService) CreateBucket(ctx context.Context, bucketName string) (*dto.BucketResponse, error) {
	if err := s.gateway.CreateBucket(ctx, bucketName); err != nil {
		return nil, errors.ErrInternal("Failed to create bucket", err)
	}
	return &dto.BucketResponse{Name: bucketName}, nil
}

func (s *bucketService) DeleteBucket(ctx context.Context, bucketName string) error {
	if err := s.gateway.DeleteBucket(ctx, bucketName); err != nil {
		if goerrors.Is(err, domain.ErrBucketNotFound) {
			return errors.ErrBucketNotFound(bucketName)
		}
		return errors.ErrInternal("Failed to delete bucket", err)
	}
	return nil
}

func (s *bucketService) GetFiles(ctx context.Context, bucketName, prefix string) ([]dto.FileInfoResponse, error) {
	objects, err := s.gateway.ListObjects(ctx, bucketName, prefix)
	if err != nil {
		if goerrors.Is(err, domain.ErrBucketNotFound) {
			return nil, errors.ErrBucketNotFound(bucketName)
		}
		return nil, errors.ErrInternal("Failed to get files", err)
	}

	files := make([]dto.FileInfoResponse, 0, len(objects))
	for _, obj := range objects {
		url, err := s.gateway.PresignURL(ctx, obj.BucketName, obj.Key)
		if err != nil {
			return nil, errors.ErrInternal("Failed to get files", err)
		}
		files = append(files, dto.FileInfoResponse{
			BucketName:   obj.BucketName,
			PresignedURL: url,
		})
	}
	return files, nil
}

// CreateFile validates the upload and hands it to the worker pool. The
// response confirms the key the object will land under; for processed
// videos the final reconciliation arrives later via the chunker callback.
func (s *bucketService) CreateFile(ctx context.Context, req *CreateFileRequest) (*dto.UploadFileResponse, error) {
	if err := ValidateUpload(req.Destination, req.ContentType, req.Process); err != nil {
		return nil, err
	}

	exists, err := s.gateway.BucketExists(ctx, req.BucketName)
	if err != nil {
		return nil, errors.ErrStorage("Failed to check bucket", err)
	}
	if !exists {
		return nil, errors.ErrBucketNotFound(req.BucketName)
	}

	key := file.MakeKey(req.Prefix, req.FileName)

	s.tasks.Enqueue(queue.FileProcessingTask{
		BucketName:  req.BucketName,
		Key:         key,
		Prefix:      req.Prefix,
		ContentType: req.ContentType,
		FileName:    req.FileName,
		FileContent: req.FileContent,
		Destination: req.Destination,
		Process:     req.Process,
		BaseURL:     req.BaseURL,
	})

	return &dto.UploadFileResponse{
		BucketName: req.BucketName,
		Key:        key,
		Prefix:     req.Prefix,
	}, nil
}

func (s *bucketService) UpdateFile(ctx context.Context, req *UpdateFileRequest) (*dto.UploadFileResponse, error) {
	if err := ValidateUpload(req.Destination, req.ContentType, req.Process); err != nil {
		return nil, err
	}

	exists, err := s.gateway.BucketExists(ctx, req.BucketName)
	if err != nil {
		return nil, errors.ErrStorage("Failed to check bucket", err)
	}
	if !exists {
		return nil, errors.ErrBucketNotFound(req.BucketName)
	}

	s.tasks.Enqueue(queue.FileProcessingTask{
		BucketName:  req.BucketName,
		Key:         req.Key,
		ContentType: req.ContentType,
		FileContent: req.FileContent,
		Destination: req.Destination,
		Process:     req.Process,
		BaseURL:     req.BaseURL,
	})

	return &dto.UploadFileResponse{
		BucketName: req.BucketName,
		Key:        req.Key,
	}, nil
}

func (s *bucketService) GetFile(ctx context.Context, bucketName, key string) (*domain.FileData, error) {
	data, err := s.gateway.GetObject(ctx, bucketName, key)
	if err != nil {
		switch {
		case goerrors.Is(err, domain.ErrBucketNotFound):
			return nil, errors.ErrBucketNotFound(bucketName)
		case goerrors.Is(err, domain.ErrObjectNotFound):
			return nil, errors.ErrFileNotFound(bucketName, key)
		default:
			return nil, errors.ErrInternal("Failed to get file", err)
		}
	}
	return data, nil
}

func (s *bucketService) DeleteFile(ctx context.Context, bucketName, key string) error {
	if err := s.gateway.DeleteObject(ctx, bucketName, key); err != nil {
		switch {
		case goerrors.Is(err, domain.ErrBucketNotFound):
			return errors.ErrBucketNotFound(bucketName)
		case goerrors.Is(err, domain.ErrObjectNotFound):
			return errors.ErrFileNotFound(bucketName, key)
		default:
			return errors.ErrInternal("Failed to delete file", err)
		}
	}
	return nil
}
