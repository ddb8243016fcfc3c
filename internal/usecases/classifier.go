package usecases

import (
	"fmt"

	"media-service/internal/domain/entities"
	"media-service/pkg/errors"
	"media-service/pkg/file"
)

// ValidateUpload checks the declared content type against the media kind a
// destination requires, and that processing is only requested for episode
// videos. Pure predicate; runs before anything touches storage.
func ValidateUpload(destination entities.Destination, contentType string, process bool) *errors.MediaError {
	switch destination {
	case entities.DestinationContentImageURL:
		if !file.IsImageMime(contentType) {
			return errors.ErrValidation(validationMessage("File", fmt.Sprintf(
				"File must be an image for destination %s", destination,
			)))
		}
	case entities.DestinationEpisodeVideoURL:
		if !file.IsVideoMime(contentType) {
			return errors.ErrValidation(validationMessage("File", fmt.Sprintf(
				"File must be a video for destination %s", destination,
			)))
		}
	}

	if process && destination != entities.DestinationEpisodeVideoURL {
		return errors.ErrValidation(validationMessage("IsVideoProcNecessary",
			"isVideoProcNecessary can only be true if FileDestination is EpisodeVideoUrl",
		))
	}

	return nil
}

func validationMessage(field, message string) string {
	return fmt.Sprintf("Validation failed: \n -- %s: %s Severity: Error", field, message)
}
