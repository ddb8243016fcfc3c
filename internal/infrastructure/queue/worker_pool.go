package queue

import (
	"context"
	"sync"
)

type WorkerPool struct {
	TaskChan chan FileProcessingTask
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewWorkerPool(workerCount int, executor TaskExecutor) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		TaskChan: make(chan FileProcessingTask, 100),
		ctx:      ctx,
		cancel:   cancel,
	}
	for i := 0; i < workerCount; i++ {
		worker := &Worker{
			ID:       i,
			TaskChan: pool.TaskChan,
			Executor: executor,
			done:     pool.wg.Done,
		}
		pool.wg.Add(1)
		worker.Start(pool.ctx)
	}
	return pool
}

func (p *WorkerPool) Enqueue(task FileProcessingTask) {
	p.TaskChan <- task
}

func (p *WorkerPool) Shutdown() {
	close(p.TaskChan)
	p.wg.Wait()
	p.cancel()
}
