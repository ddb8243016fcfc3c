package entities

import "fmt"

// Destination says what an uploaded file becomes: a content thumbnail,
// an episode video, or plain internal storage.
type Destination string

const (
	DestinationInternal        Destination = "Internal"
	DestinationContentImageURL Destination = "ContentImageUrl"
	DestinationEpisodeVideoURL Destination = "EpisodeVideoUrl"
)

func ParseDestination(s string) (Destination, error) {
	switch s {
	case "", string(DestinationInternal):
		return DestinationInternal, nil
	case string(DestinationContentImageURL):
		return DestinationContentImageURL, nil
	case string(DestinationEpisodeVideoURL):
		return DestinationEpisodeVideoURL, nil
	default:
		return "", fmt.Errorf("unknown destination: %s", s)
	}
}
