package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeKey(t *testing.T) {
	assert.Equal(t, "image.png", MakeKey("", "image.png"))
	assert.Equal(t, "content-1/image.png", MakeKey("content-1", "image.png"))
	assert.Equal(t, "content-1/image.png", MakeKey("content-1/", "image.png"))
	assert.Equal(t, "content-1/ep-2/video.mp4", MakeKey("content-1/ep-2", "video.mp4"))
}

func TestKeySegment(t *testing.T) {
	assert.Equal(t, "content-1", KeySegment("content-1/ep-2/video.mp4", 0))
	assert.Equal(t, "ep-2", KeySegment("content-1/ep-2/video.mp4", 1))
	assert.Equal(t, "", KeySegment("content-1/ep-2/video.mp4", 3))
	assert.Equal(t, "content-1", KeySegment("/content-1//ep-2/", 0))
	assert.Equal(t, "", KeySegment("video.mp4", 1))
	assert.Equal(t, "", KeySegment("video.mp4", -1))
}

func TestGetMimeTypeFromExtension(t *testing.T) {
	assert.Equal(t, "image/png", GetMimeTypeFromExtension("image.PNG"))
	assert.Equal(t, "image/jpeg", GetMimeTypeFromExtension("photo.jpeg"))
	assert.Equal(t, "video/mp4", GetMimeTypeFromExtension("clip.mp4"))
	assert.Equal(t, "application/vnd.apple.mpegurl", GetMimeTypeFromExtension("master.m3u8"))
	assert.Equal(t, "video/mp2t", GetMimeTypeFromExtension("segment-001.ts"))
	assert.Equal(t, "application/octet-stream", GetMimeTypeFromExtension("report.pdf"))
}

func TestMimePredicates(t *testing.T) {
	assert.True(t, IsImageMime("image/png"))
	assert.False(t, IsImageMime("video/mp4"))
	assert.True(t, IsVideoMime("video/mkv"))
	assert.False(t, IsVideoMime("application/octet-stream"))
}
