package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"media-service/internal/domain/repositories"
)

// HTTPContentRegistry writes thumbnail and video references back onto
// content/episode records through the content service API.
type HTTPContentRegistry struct {
	baseURL string
	client  *http.Client
}

func NewHTTPContentRegistry(baseURL string) *HTTPContentRegistry {
	return &HTTPContentRegistry{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPContentRegistry) SetContentImageURL(ctx context.Context, contentID, url string) error {
	body := map[string]string{"thumbnail": url}
	return c.put(ctx, fmt.Sprintf("%s/v1/contents/%s/image", c.baseURL, contentID), body, repositories.ErrContentNotFound)
}

func (c *HTTPContentRegistry) SetEpisodeVideoURL(ctx context.Context, episodeID, url, status string) error {
	body := map[string]string{"s3_bucket_name": url, "status": status}
	return c.put(ctx, fmt.Sprintf("%s/v1/episodes/%s/video", c.baseURL, episodeID), body, repositories.ErrEpisodeNotFound)
}

func (c *HTTPContentRegistry) put(ctx context.Context, url string, body map[string]string, notFound error) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("content service unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return notFound
	default:
		return fmt.Errorf("content service returned status %d", resp.StatusCode)
	}
}
