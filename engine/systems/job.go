package systems

import (
	"context"
	"errors"
	"sync"

	"github.com/spaghettifunk/orrery/engine/core"
)

/**
 * @brief Describes a job to be run on one of the job system workers.
 * OnComplete and OnFailure run on the worker goroutine as well.
 */
type JobTask struct {
	Name string
	/** @brief The work itself. Should return early once ctx is done. */
	OnStart func(ctx context.Context) (interface{}, error)
	/** @brief Optional. Receives the result of a successful OnStart. */
	OnComplete func(ctx context.Context, result interface{})
	/** @brief Optional. Receives the error of a failed or cancelled job. */
	OnFailure func(ctx context.Context, err error)
}

type JobSystem struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	mutex  sync.RWMutex
	closed bool
}

var ErrNoWorkers = errors.New("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = errors.New("attempting to create worker pool with a negative channel size")
var ErrJobSystemClosed = errors.New("job system is shut down")

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	ctx, cancel := context.WithCancel(context.Background())
	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   make(chan JobTask, channelSize),
		ctx:        ctx,
		cancel:     cancel,
	}

	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				js.run(job)
			}
		}()
	}
}

func (js *JobSystem) run(job JobTask) {
	if err := js.ctx.Err(); err != nil {
		if job.OnFailure != nil {
			job.OnFailure(js.ctx, err)
		}
		return
	}

	result, err := job.OnStart(js.ctx)
	if err != nil {
		core.LogDebug("job %s failed: %s", job.Name, err)
		if job.OnFailure != nil {
			job.OnFailure(js.ctx, err)
		}
		return
	}
	if job.OnComplete != nil {
		job.OnComplete(js.ctx, result)
	}
}

/**
 * @brief Shuts the job system down. Queued jobs that have not started yet
 * fail with context.Canceled; running jobs see their context cancelled.
 * Returns once every worker has exited.
 */
func (js *JobSystem) Shutdown() error {
	js.mutex.Lock()
	if js.closed {
		js.mutex.Unlock()
		return nil
	}
	js.closed = true
	js.cancel()
	close(js.jobQueue)
	js.mutex.Unlock()

	js.wg.Wait()
	return nil
}

/**
 * @brief Submits the provided job to be queued for execution. Blocks while the
 * queue is full.
 * @param jt The description of the job to be executed.
 */
func (js *JobSystem) Submit(jt JobTask) error {
	js.mutex.RLock()
	defer js.mutex.RUnlock()
	if js.closed {
		return ErrJobSystemClosed
	}
	js.jobQueue <- jt
	return nil
}
