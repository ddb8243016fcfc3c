package errors

import "fmt"

type MediaError struct {
	Code    string
	Message string
	Err     error
}

func (e *MediaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *MediaError) Unwrap() error {
	return e.Err
}

var (
	ErrValidation = func(message string) *MediaError {
		return &MediaError{Code: "validation_failed", Message: message}
	}
	ErrBucketNotFound = func(bucketName string) *MediaError {
		return &MediaError{Code: "not_found", Message: fmt.Sprintf("Bucket %s does not exist", bucketName)}
	}
	ErrFileNotFound = func(bucketName, key string) *MediaError {
		return &MediaError{Code: "not_found", Message: fmt.Sprintf("File '%s' in bucket '%s' does not exist", key, bucketName)}
	}
	ErrJobNotFound = func(jobID string) *MediaError {
		return &MediaError{Code: "not_found", Message: fmt.Sprintf("Job %s does not exist", jobID)}
	}
	ErrUnauthorized = func(detail string) *MediaError {
		return &MediaError{Code: "unauthorized", Message: detail}
	}
	ErrForbidden = func(detail string) *MediaError {
		return &MediaError{Code: "forbidden", Message: detail}
	}
	ErrStorage = func(message string, err error) *MediaError {
		return &MediaError{Code: "storage_error", Message: message, Err: err}
	}
	ErrDispatch = func(message string, err error) *MediaError {
		return &MediaError{Code: "dispatch_error", Message: message, Err: err}
	}
	ErrRegistry = func(message string, err error) *MediaError {
		return &MediaError{Code: "registry_error", Message: message, Err: err}
	}
	ErrInternal = func(message string, err error) *MediaError {
		return &MediaError{Code: "internal_error", Message: message, Err: err}
	}
)
