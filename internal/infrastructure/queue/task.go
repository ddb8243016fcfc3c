package queue

import "media-service/internal/domain/entities"

// FileProcessingTask carries one accepted upload through storage and
// registry reconciliation.
type FileProcessingTask struct {
	BucketName  string
	Key         string
	Prefix      string
	ContentType string
	FileName    string
	FileContent []byte
	Destination entities.Destination
	Process     bool
	// BaseURL is the request path the retrieval url is built from,
	// e.g. /v1/buckets/movify/files.
	BaseURL string
}
