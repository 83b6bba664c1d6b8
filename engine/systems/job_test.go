package systems

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJobSystemRejectsBadSizes(t *testing.T) {
	_, err := NewJobSystem(0, 1)
	assert.ErrorIs(t, err, ErrNoWorkers)
	_, err = NewJobSystem(1, -1)
	assert.ErrorIs(t, err, ErrNegativeChannelSize)
}

func TestJobSystemRunsCallbacks(t *testing.T) {
	js, err := NewJobSystem(4, 8)
	require.NoError(t, err)

	var completed, failed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		i := i
		wg.Add(1)
		require.NoError(t, js.Submit(JobTask{
			Name: "square",
			OnStart: func(ctx context.Context) (interface{}, error) {
				if i%2 == 1 {
					return nil, errors.New("odd")
				}
				return i * i, nil
			},
			OnComplete: func(ctx context.Context, result interface{}) {
				completed.Add(1)
				wg.Done()
			},
			OnFailure: func(ctx context.Context, err error) {
				failed.Add(1)
				wg.Done()
			},
		}))
	}
	wg.Wait()
	require.NoError(t, js.Shutdown())

	assert.Equal(t, int32(5), completed.Load())
	assert.Equal(t, int32(5), failed.Load())
}

func TestJobSystemShutdownCancelsRunningJobs(t *testing.T) {
	js, err := NewJobSystem(1, 1)
	require.NoError(t, err)

	started := make(chan struct{})
	var cause error
	require.NoError(t, js.Submit(JobTask{
		OnStart: func(ctx context.Context) (interface{}, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		},
		OnFailure: func(ctx context.Context, err error) {
			cause = err
		},
	}))
	<-started
	require.NoError(t, js.Shutdown())

	assert.ErrorIs(t, cause, context.Canceled)
	assert.ErrorIs(t, js.Submit(JobTask{}), ErrJobSystemClosed)
	assert.NoError(t, js.Shutdown())
}
