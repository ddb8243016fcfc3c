package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingExecutor struct {
	mu   sync.Mutex
	keys []string
}

func (e *countingExecutor) Execute(ctx context.Context, task FileProcessingTask) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.keys = append(e.keys, task.Key)
	return nil
}

func TestWorkerPoolProcessesAllTasks(t *testing.T) {
	executor := &countingExecutor{}
	pool := NewWorkerPool(4, executor)

	const total = 50
	for i := 0; i < total; i++ {
		pool.Enqueue(FileProcessingTask{
			BucketName: "movify",
			Key:        fmt.Sprintf("content-%d/image.png", i),
		})
	}

	// Shutdown drains the channel before stopping the workers.
	pool.Shutdown()

	executor.mu.Lock()
	defer executor.mu.Unlock()
	assert.Len(t, executor.keys, total)
}

func TestWorkerPoolSingleWorker(t *testing.T) {
	executor := &countingExecutor{}
	pool := NewWorkerPool(1, executor)

	pool.Enqueue(FileProcessingTask{BucketName: "movify", Key: "a.png"})
	pool.Shutdown()

	executor.mu.Lock()
	defer executor.mu.Unlock()
	assert.Equal(t, []string{"a.png"}, executor.keys)
}
