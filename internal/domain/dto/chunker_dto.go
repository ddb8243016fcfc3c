package dto

// ProcessVideoJob is pushed onto the chunker job queue. The worker echoes
// JobID back in its callback so completions can be matched to submissions.
type ProcessVideoJob struct {
	JobID      string `json:"job_id"`
	BucketName string `json:"bucket_name"`
	Key        string `json:"key"`
	BaseURL    string `json:"base_url"`
}

type CancelVideoJob struct {
	JobID string `json:"job_id"`
}

// ProcessVideoCallback arrives out-of-band from the chunker worker, either
// over the processed-results queue or the HTTP callback endpoint.
// On success Key is the HLS master manifest key; on failure Error is set.
type ProcessVideoCallback struct {
	JobID      string `json:"job_id"`
	BucketName string `json:"bucket_name"`
	Key        string `json:"key"`
	BaseURL    string `json:"base_url"`
	Error      string `json:"error,omitempty"`
}
