package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"media-service/internal/domain/repositories"
	"media-service/internal/pkg/config"
)

type S3Storage struct {
	client  *s3.Client
	presign *s3.PresignClient
	expires time.Duration
}

func NewS3Storage(cfg config.AWSConfig) (*S3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &S3Storage{
		client:  client,
		presign: s3.NewPresignClient(client),
		expires: time.Duration(cfg.PresignExpireSeconds) * time.Second,
	}, nil
}

func (s *S3Storage) ListBuckets(ctx context.Context) ([]string, error) {
	resp, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("S3 list buckets failed: %w", err)
	}

	names := make([]string, 0, len(resp.Buckets))
	for _, b := range resp.Buckets {
		names = append(names, aws.ToString(b.Name))
	}
	return names, nil
}

func (s *S3Storage) CreateBucket(ctx context.Context, bucketName string) error {
	exists, err := s.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", repositories.ErrBucketExists, bucketName)
	}

	if _, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucketName),
	}); err != nil {
		return fmt.Errorf("S3 create bucket failed: %w", err)
	}
	return nil
}

func (s *S3Storage) DeleteBucket(ctx context.Context, bucketName string) error {
	exists, err := s.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", repositories.ErrBucketNotFound, bucketName)
	}

	if _, err := s.client.DeleteBucket(ctx, &s3.DeleteBucketInput{
		Bucket: aws.String(bucketName),
	}); err != nil {
		return fmt.Errorf("S3 delete bucket failed: %w", err)
	}
	return nil
}

func (s *S3Storage) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, fmt.Errorf("S3 head bucket failed: %w", err)
	}
	return true, nil
}

func (s *S3Storage) PutObject(ctx context.Context, bucketName, key, contentType string, body io.Reader) error {
	exists, err := s.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", repositories.ErrBucketNotFound, bucketName)
	}

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}); err != nil {
		return fmt.Errorf("S3 put object failed: %w", err)
	}
	return nil
}

func (s *S3Storage) GetObject(ctx context.Context, bucketName, key string) (*repositories.FileData, error) {
	exists, err := s.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", repositories.ErrBucketNotFound, bucketName)
	}

	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("%w: %s", repositories.ErrObjectNotFound, key)
		}
		return nil, fmt.Errorf("S3 get object failed: %w", err)
	}

	return &repositories.FileData{
		Content:     resp.Body,
		ContentType: aws.ToString(resp.ContentType),
		FileName:    baseName(key),
	}, nil
}

func (s *S3Storage) DeleteObject(ctx context.Context, bucketName, key string) error {
	exists, err := s.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", repositories.ErrBucketNotFound, bucketName)
	}

	// S3 deletes are idempotent, so probe first to keep the distinct
	// file-not-found behavior.
	if _, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	}); err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return fmt.Errorf("%w: %s", repositories.ErrObjectNotFound, key)
		}
		return fmt.Errorf("S3 head object failed: %w", err)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("S3 delete object failed: %w", err)
	}
	return nil
}

func (s *S3Storage) ListObjects(ctx context.Context, bucketName, prefix string) ([]repositories.StoredObject, error) {
	exists, err := s.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", repositories.ErrBucketNotFound, bucketName)
	}

	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucketName),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	var objects []repositories.StoredObject
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("S3 list objects failed: %w", err)
		}
		for _, o := range page.Contents {
			objects = append(objects, repositories.StoredObject{
				BucketName: bucketName,
				Key:        aws.ToString(o.Key),
				Size:       aws.ToInt64(o.Size),
				CreatedAt:  aws.ToTime(o.LastModified),
			})
		}
	}
	return objects, nil
}

func (s *S3Storage) PresignURL(ctx context.Context, bucketName, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expires))
	if err != nil {
		return "", fmt.Errorf("S3 presign failed: %w", err)
	}
	return req.URL, nil
}
