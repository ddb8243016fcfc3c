package registry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-service/internal/domain/repositories"
)

func TestSetContentImageURL(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewHTTPContentRegistry(server.URL)
	err := client.SetContentImageURL(context.Background(), "content-42", "/v1/buckets/movify/files/content-42/image.png")
	require.NoError(t, err)

	assert.Equal(t, "/v1/contents/content-42/image", gotPath)
	assert.Equal(t, "/v1/buckets/movify/files/content-42/image.png", gotBody["thumbnail"])
}

func TestSetEpisodeVideoURL(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewHTTPContentRegistry(server.URL)
	err := client.SetEpisodeVideoURL(context.Background(), "ep-7", "/v1/buckets/movify/files/a/hls/master.m3u8", "UPLOADED")
	require.NoError(t, err)

	assert.Equal(t, "/v1/episodes/ep-7/video", gotPath)
	assert.Equal(t, "/v1/buckets/movify/files/a/hls/master.m3u8", gotBody["s3_bucket_name"])
	assert.Equal(t, "UPLOADED", gotBody["status"])
}

func TestMissingRecordsMapToSentinels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewHTTPContentRegistry(server.URL)

	err := client.SetContentImageURL(context.Background(), "gone", "url")
	assert.ErrorIs(t, err, repositories.ErrContentNotFound)

	err = client.SetEpisodeVideoURL(context.Background(), "gone", "url", "UPLOADED")
	assert.ErrorIs(t, err, repositories.ErrEpisodeNotFound)
}

func TestServerErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPContentRegistry(server.URL)
	err := client.SetContentImageURL(context.Background(), "content-42", "url")
	assert.ErrorContains(t, err, "status 500")
}
