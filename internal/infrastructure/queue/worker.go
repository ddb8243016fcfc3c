package queue

import (
	"context"
	"log"
)

// TaskExecutor runs one file processing task to completion.
type TaskExecutor interface {
	Execute(ctx context.Context, task FileProcessingTask) error
}

type Worker struct {
	ID       int
	TaskChan <-chan FileProcessingTask
	Executor TaskExecutor
	done     func()
}

func (w *Worker) Start(ctx context.Context) {
	go func() {
		defer w.done()
		for {
			select {
			case task, ok := <-w.TaskChan:
				if !ok {
					log.Printf("Worker %d: task channel closed", w.ID)
					return
				}
				select {
				case <-ctx.Done():
					log.Printf("Worker %d: task for key %s cancelled", w.ID, task.Key)
					continue
				default:
					w.processTask(ctx, task)
				}
			case <-ctx.Done():
				log.Printf("Worker %d: stopping due to context cancellation", w.ID)
				return
			}
		}
	}()
}

func (w *Worker) processTask(ctx context.Context, task FileProcessingTask) {
	log.Printf("Worker %d: processing %s upload %s/%s", w.ID, task.Destination, task.BucketName, task.Key)

	if err := w.Executor.Execute(ctx, task); err != nil {
		log.Printf("Worker %d: processing %s/%s failed: %v", w.ID, task.BucketName, task.Key, err)
		return
	}
	log.Printf("Worker %d: processing %s/%s succeeded", w.ID, task.BucketName, task.Key)
}
