package constants

// Transcode job lifecycle.
const (
	JobStatusSubmitted  = "submitted"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
	JobStatusCancelled  = "cancelled"
)

// Episode video status reported to the content service.
const (
	FileStatusInProgress = "IN_PROGRESS"
	FileStatusUploaded   = "UPLOADED"
	FileStatusError      = "ERROR"
)

const (
	StatusOK     = "ok"
	StatusQueued = "queued"
	RoleAdmin    = "ADMIN"
)
