package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"
)

func TestWorkerRunner_MustRun_NilErrorReturns(t *testing.T) {
	t.Parallel()

	r := &WorkerRunner{runFn: func(*dig.Container) error { return nil }}
	require.NotPanics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRunner_MustRun_ContextCanceledReturns(t *testing.T) {
	t.Parallel()

	r := &WorkerRunner{runFn: func(*dig.Container) error { return context.Canceled }}
	require.NotPanics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRunner_MustRun_PanicsOnError(t *testing.T) {
	t.Parallel()

	r := &WorkerRunner{runFn: func(*dig.Container) error { return errors.New("boom") }}
	require.Panics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRun_NilConsumerFails(t *testing.T) {
	c := buildTestContainer(t, true)

	err := c.Invoke(workerRun)
	require.Error(t, err)
	require.Contains(t, err.Error(), "kafka consumer is nil")
}
