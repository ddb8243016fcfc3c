package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"media-service/internal/domain/entities"
	"media-service/internal/usecases"
	"media-service/pkg/errors"
	filepkg "media-service/pkg/file"
)

type BucketHandler struct {
	bucketService usecases.BucketService
}

func NewBucketHandler(bucketService usecases.BucketService) *BucketHandler {
	return &BucketHandler{
		bucketService: bucketService,
	}
}

// GetBuckets
//
// @Summary      List Buckets
// @Description  Returns all buckets in the object store
// @Tags         Buckets
// @Produce      json
// @Success      200  {array}   dto.BucketResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /v1/buckets [get]
func (h *BucketHandler) GetBuckets(c *fiber.Ctx) error {
	buckets, err := h.bucketService.GetBuckets(c.UserContext())
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(buckets)
}

// CreateBucket
//
// @Summary      Create Bucket
// @Description  Creates a new bucket
// @Tags         Buckets
// @Produce      json
// @Param        bucket-name  query     string true "Bucket name"
// @Success      200          {object}  dto.BucketResponse
// @Failure      500          {object}  dto.ErrorResponse
// @Router       /v1/buckets [post]
func (h *BucketHandler) CreateBucket(c *fiber.Ctx) error {
	bucketName := c.Query("bucket-name")
	if bucketName == "" {
		return errors.HandleError(c, errors.ErrValidation("Missing 'bucket-name' parameter"))
	}

	bucket, err := h.bucketService.CreateBucket(c.UserContext(), bucketName)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(bucket)
}

// DeleteBucket
//
// @Summary      Delete Bucket
// @Description  Deletes an existing bucket
// @Tags         Buckets
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/buckets/{bucket-name} [delete]
func (h *BucketHandler) DeleteBucket(c *fiber.Ctx) error {
	if err := h.bucketService.DeleteBucket(c.UserContext(), c.Params("bucket")); err != nil {
		return errors.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetFiles
//
// @Summary      List Files
// @Description  Lists files in a bucket with short-lived retrieval urls
// @Tags         Files
// @Produce      json
// @Param        prefix  query     string false "Key prefix filter"
// @Success      200     {array}   dto.FileInfoResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /v1/buckets/{bucket-name}/files [get]
func (h *BucketHandler) GetFiles(c *fiber.Ctx) error {
	files, err := h.bucketService.GetFiles(c.UserContext(), c.Params("bucket"), c.Query("prefix"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(files)
}

// CreateFile
//
// @Summary      Upload File
// @Description  Uploads a file, optionally dispatching video transcoding
// @Tags         Files
// @Accept       multipart/form-data
// @Produce      json
// @Param        prefix       query     string false "Key prefix, typically contentId/ or contentId/episodeId/"
// @Param        process      query     bool   false "Request asynchronous video transcoding"
// @Param        destination  query     string false "Internal | ContentImageUrl | EpisodeVideoUrl"
// @Param        file         formData  file   true  "File body"
// @Success      200          {object}  dto.UploadFileResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /v1/buckets/{bucket-name}/files [post]
func (h *BucketHandler) CreateFile(c *fiber.Ctx) error {
	bucketName := c.Params("bucket")

	destination, content, contentType, fileName, err := h.parseUpload(c)
	if err != nil {
		return errors.HandleError(c, err)
	}

	response, err := h.bucketService.CreateFile(c.UserContext(), &usecases.CreateFileRequest{
		BucketName:  bucketName,
		Prefix:      c.Query("prefix"),
		FileName:    fileName,
		ContentType: contentType,
		FileContent: content,
		Destination: destination,
		Process:     c.QueryBool("process"),
		BaseURL:     fmt.Sprintf("/v1/buckets/%s/files", bucketName),
	})
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(response)
}

// UpdateFile
//
// @Summary      Replace File
// @Description  Re-ingests a file under an existing key
// @Tags         Files
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  dto.UploadFileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /v1/buckets/{bucket-name}/files/{key} [put]
func (h *BucketHandler) UpdateFile(c *fiber.Ctx) error {
	bucketName := c.Params("bucket")

	destination, content, contentType, _, err := h.parseUpload(c)
	if err != nil {
		return errors.HandleError(c, err)
	}

	response, err := h.bucketService.UpdateFile(c.UserContext(), &usecases.UpdateFileRequest{
		BucketName:  bucketName,
		Key:         c.Params("+"),
		ContentType: contentType,
		FileContent: content,
		Destination: destination,
		Process:     c.QueryBool("process"),
		BaseURL:     fmt.Sprintf("/v1/buckets/%s/files", bucketName),
	})
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(response)
}

// GetFile
//
// @Summary      Download File
// @Description  Streams the raw file bytes
// @Tags         Files
// @Produce      octet-stream
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/buckets/{bucket-name}/files/{key} [get]
func (h *BucketHandler) GetFile(c *fiber.Ctx) error {
	data, err := h.bucketService.GetFile(c.UserContext(), c.Params("bucket"), c.Params("+"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	defer data.Content.Close()

	content, err := io.ReadAll(data.Content)
	if err != nil {
		return errors.HandleError(c, errors.ErrInternal("Failed to read file", err))
	}

	if data.ContentType != "" {
		c.Set(fiber.HeaderContentType, data.ContentType)
	}
	return c.Send(content)
}

// DeleteFile
//
// @Summary      Delete File
// @Description  Deletes a single file from a bucket
// @Tags         Files
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/buckets/{bucket-name}/files/{key} [delete]
func (h *BucketHandler) DeleteFile(c *fiber.Ctx) error {
	if err := h.bucketService.DeleteFile(c.UserContext(), c.Params("bucket"), c.Params("+")); err != nil {
		return errors.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BucketHandler) parseUpload(c *fiber.Ctx) (entities.Destination, []byte, string, string, error) {
	destination, err := entities.ParseDestination(c.Query("destination"))
	if err != nil {
		return "", nil, "", "", errors.ErrValidation(fmt.Sprintf("Unknown destination '%s'", c.Query("destination")))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", nil, "", "", errors.ErrValidation("Missing 'file' form field")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", nil, "", "", errors.ErrInternal("Failed to open uploaded file", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return "", nil, "", "", errors.ErrInternal("Failed to read uploaded file", err)
	}

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = filepkg.GetMimeTypeFromExtension(fileHeader.Filename)
	}

	return destination, content, contentType, fileHeader.Filename, nil
}
