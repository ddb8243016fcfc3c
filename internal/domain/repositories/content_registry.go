package repositories

import (
	"context"
	"errors"
)

var (
	ErrContentNotFound = errors.New("content not found")
	ErrEpisodeNotFound = errors.New("episode not found")
)

// ContentRegistry mutates content/episode metadata owned by the content
// service. The thumbnail and video url fields are field-level writes, not
// read-modify-write transactions.
type ContentRegistry interface {
	SetContentImageURL(ctx context.Context, contentID, url string) error
	SetEpisodeVideoURL(ctx context.Context, episodeID, url, status string) error
}
