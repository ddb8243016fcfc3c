package dto

type BucketResponse struct {
	Name string `json:"name"`
}

type FileInfoResponse struct {
	BucketName   string `json:"bucketName"`
	PresignedURL string `json:"presignedUrl"`
}

type UploadFileResponse struct {
	BucketName string `json:"bucketName"`
	Key        string `json:"key"`
	Prefix     string `json:"prefix"`
}

type ErrorResponse struct {
	Body ErrorDetail `json:"body"`
}

type ErrorDetail struct {
	Detail string `json:"detail"`
}
