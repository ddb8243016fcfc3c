package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-service/internal/domain/entities"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name        string
		destination entities.Destination
		contentType string
		process     bool
		wantDetail  string
	}{
		{
			name:        "internal accepts anything",
			destination: entities.DestinationInternal,
			contentType: "text/plain",
		},
		{
			name:        "content image accepts png",
			destination: entities.DestinationContentImageURL,
			contentType: "image/png",
		},
		{
			name:        "episode video accepts mp4",
			destination: entities.DestinationEpisodeVideoURL,
			contentType: "video/mp4",
		},
		{
			name:        "episode video accepts mp4 with processing",
			destination: entities.DestinationEpisodeVideoURL,
			contentType: "video/mp4",
			process:     true,
		},
		{
			name:        "content image rejects video",
			destination: entities.DestinationContentImageURL,
			contentType: "video/mp4",
			wantDetail:  "Validation failed: \n -- File: File must be an image for destination ContentImageUrl Severity: Error",
		},
		{
			name:        "content image rejects text",
			destination: entities.DestinationContentImageURL,
			contentType: "text/plain",
			wantDetail:  "Validation failed: \n -- File: File must be an image for destination ContentImageUrl Severity: Error",
		},
		{
			name:        "episode video rejects image",
			destination: entities.DestinationEpisodeVideoURL,
			contentType: "image/png",
			wantDetail:  "Validation failed: \n -- File: File must be a video for destination EpisodeVideoUrl Severity: Error",
		},
		{
			name:        "processing requires episode video destination",
			destination: entities.DestinationInternal,
			contentType: "video/mp4",
			process:     true,
			wantDetail:  "Validation failed: \n -- IsVideoProcNecessary: isVideoProcNecessary can only be true if FileDestination is EpisodeVideoUrl Severity: Error",
		},
		{
			name:        "processing rejected for content images",
			destination: entities.DestinationContentImageURL,
			contentType: "image/png",
			process:     true,
			wantDetail:  "Validation failed: \n -- IsVideoProcNecessary: isVideoProcNecessary can only be true if FileDestination is EpisodeVideoUrl Severity: Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.destination, tt.contentType, tt.process)
			if tt.wantDetail == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, "validation_failed", err.Code)
			assert.Equal(t, tt.wantDetail, err.Message)
		})
	}
}

func TestParseDestination(t *testing.T) {
	dest, err := entities.ParseDestination("")
	require.NoError(t, err)
	assert.Equal(t, entities.DestinationInternal, dest)

	dest, err = entities.ParseDestination("EpisodeVideoUrl")
	require.NoError(t, err)
	assert.Equal(t, entities.DestinationEpisodeVideoURL, dest)

	_, err = entities.ParseDestination("Thumbnail")
	assert.Error(t, err)
}
