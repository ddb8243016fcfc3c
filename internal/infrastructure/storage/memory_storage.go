package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"media-service/internal/domain/repositories"
)

type memoryObject struct {
	content     []byte
	contentType string
	createdAt   time.Time
}

// MemoryStorage keeps buckets and objects in process memory. It backs the
// tests and local development without an S3 endpoint.
type MemoryStorage struct {
	mu      sync.RWMutex
	buckets map[string]map[string]memoryObject
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		buckets: make(map[string]map[string]memoryObject),
	}
}

func (m *MemoryStorage) ListBuckets(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.buckets))
	for name := range m.buckets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStorage) CreateBucket(ctx context.Context, bucketName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.buckets[bucketName]; ok {
		return fmt.Errorf("%w: %s", repositories.ErrBucketExists, bucketName)
	}
	m.buckets[bucketName] = make(map[string]memoryObject)
	return nil
}

func (m *MemoryStorage) DeleteBucket(ctx context.Context, bucketName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.buckets[bucketName]; !ok {
		return fmt.Errorf("%w: %s", repositories.ErrBucketNotFound, bucketName)
	}
	delete(m.buckets, bucketName)
	return nil
}

func (m *MemoryStorage) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.buckets[bucketName]
	return ok, nil
}

func (m *MemoryStorage) PutObject(ctx context.Context, bucketName, key, contentType string, body io.Reader) error {
	content, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read object body: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	bucket, ok := m.buckets[bucketName]
	if !ok {
		return fmt.Errorf("%w: %s", repositories.ErrBucketNotFound, bucketName)
	}
	bucket[key] = memoryObject{
		content:     content,
		contentType: contentType,
		createdAt:   time.Now(),
	}
	return nil
}

func (m *MemoryStorage) GetObject(ctx context.Context, bucketName, key string) (*repositories.FileData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bucket, ok := m.buckets[bucketName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repositories.ErrBucketNotFound, bucketName)
	}
	obj, ok := bucket[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repositories.ErrObjectNotFound, key)
	}

	return &repositories.FileData{
		Content:     io.NopCloser(bytes.NewReader(obj.content)),
		ContentType: obj.contentType,
		FileName:    baseName(key),
	}, nil
}

func (m *MemoryStorage) DeleteObject(ctx context.Context, bucketName, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bucket, ok := m.buckets[bucketName]
	if !ok {
		return fmt.Errorf("%w: %s", repositories.ErrBucketNotFound, bucketName)
	}
	if _, ok := bucket[key]; !ok {
		return fmt.Errorf("%w: %s", repositories.ErrObjectNotFound, key)
	}
	delete(bucket, key)
	return nil
}

func (m *MemoryStorage) ListObjects(ctx context.Context, bucketName, prefix string) ([]repositories.StoredObject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bucket, ok := m.buckets[bucketName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repositories.ErrBucketNotFound, bucketName)
	}

	var objects []repositories.StoredObject
	for key, obj := range bucket {
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			continue
		}
		objects = append(objects, repositories.StoredObject{
			BucketName:  bucketName,
			Key:         key,
			Size:        int64(len(obj.content)),
			ContentType: obj.contentType,
			CreatedAt:   obj.createdAt,
		})
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

func (m *MemoryStorage) PresignURL(ctx context.Context, bucketName, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bucket, ok := m.buckets[bucketName]
	if !ok {
		return "", fmt.Errorf("%w: %s", repositories.ErrBucketNotFound, bucketName)
	}
	if _, ok := bucket[key]; !ok {
		return "", fmt.Errorf("%w: %s", repositories.ErrObjectNotFound, key)
	}
	return fmt.Sprintf("http://localhost:9000/%s/%s", bucketName, key), nil
}

func baseName(key string) string {
	if idx := strings.LastIndex(key, "/"); idx >= 0 {
		return key[idx+1:]
	}
	return key
}
