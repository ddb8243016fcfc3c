package chunker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"media-service/internal/domain/dto"
)

// RedisChunkerClient hands jobs to the chunker worker over Redis lists. The
// worker consumes the job queue and reports back on the processed queue.
type RedisChunkerClient struct {
	rdb         *redis.Client
	jobQueue    string
	cancelQueue string
}

func NewRedisChunkerClient(rdb *redis.Client, jobQueue, cancelQueue string) *RedisChunkerClient {
	return &RedisChunkerClient{
		rdb:         rdb,
		jobQueue:    jobQueue,
		cancelQueue: cancelQueue,
	}
}

func (c *RedisChunkerClient) ProcessVideo(ctx context.Context, job dto.ProcessVideoJob) error {
	serialized, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to serialize chunker job: %w", err)
	}
	if err := c.rdb.LPush(ctx, c.jobQueue, serialized).Err(); err != nil {
		return fmt.Errorf("failed to push chunker job: %w", err)
	}
	return nil
}

func (c *RedisChunkerClient) CancelVideoProcessing(ctx context.Context, cancel dto.CancelVideoJob) error {
	serialized, err := json.Marshal(cancel)
	if err != nil {
		return fmt.Errorf("failed to serialize cancel message: %w", err)
	}
	if err := c.rdb.LPush(ctx, c.cancelQueue, serialized).Err(); err != nil {
		return fmt.Errorf("failed to push cancel message: %w", err)
	}
	return nil
}
