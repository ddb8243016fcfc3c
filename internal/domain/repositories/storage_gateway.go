package repositories

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	ErrBucketNotFound = errors.New("bucket not found")
	ErrBucketExists   = errors.New("bucket already exists")
	ErrObjectNotFound = errors.New("object not found")
)

type StoredObject struct {
	BucketName  string
	Key         string
	Size        int64
	ContentType string
	CreatedAt   time.Time
}

type FileData struct {
	Content     io.ReadCloser
	ContentType string
	FileName    string
}

// StorageGateway is the capability contract over the object store. The
// orchestrator depends on this, never on a concrete backend.
type StorageGateway interface {
	ListBuckets(ctx context.Context) ([]string, error)
	CreateBucket(ctx context.Context, bucketName string) error
	DeleteBucket(ctx context.Context, bucketName string) error
	BucketExists(ctx context.Context, bucketName string) (bool, error)

	PutObject(ctx context.Context, bucketName, key, contentType string, body io.Reader) error
	GetObject(ctx context.Context, bucketName, key string) (*FileData, error)
	DeleteObject(ctx context.Context, bucketName, key string) error
	ListObjects(ctx context.Context, bucketName, prefix string) ([]StoredObject, error)
	PresignURL(ctx context.Context, bucketName, key string) (string, error)
}
