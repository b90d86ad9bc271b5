package shutdown_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"gonote/pkg/shutdown"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitRunsHooksOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	hook := func(context.Context) error {
		calls.Add(1)
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- shutdown.Wait(ctx, time.Second, hook, hook) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after context cancel")
	}
	assert.EqualValues(t, 2, calls.Load())
}

func TestRun(t *testing.T) {
	t.Run("joins hook errors", func(t *testing.T) {
		errA := errors.New("a failed")
		errB := errors.New("b failed")

		err := shutdown.Run(time.Second,
			func(context.Context) error { return errA },
			func(context.Context) error { return nil },
			func(context.Context) error { return errB },
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		err := shutdown.Run(50*time.Millisecond, func(context.Context) error {
			<-release
			return nil
		})
		assert.ErrorIs(t, err, shutdown.ErrTimeout)
	})

	t.Run("no hooks", func(t *testing.T) {
		assert.NoError(t, shutdown.Run(time.Second))
	})
}
