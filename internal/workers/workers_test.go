// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(context.Context) {
	m.runCount.Add(1)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}

	ws := NewWorkers(2, w1, w2, w3)
	require.NoError(t, ws.Run(context.Background()))

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers(4)

	// Should not panic on empty workers list
	assert.NoError(t, ws.Run(context.Background()))
	assert.Zero(t, ws.Len())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	assert.NoError(t, ws.Run(context.Background()))
}

// TestWorkers_Run_RespectsLimit verifies that no more than limit workers run
// at the same time.
func TestWorkers_Run_RespectsLimit(t *testing.T) {
	const limit = 3
	var running, peak atomic.Int32

	ws := NewWorkers(limit)
	for range 12 {
		ws.Add(WorkerFunc(func(context.Context) {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
		}))
	}

	require.NoError(t, ws.Run(context.Background()))
	assert.LessOrEqual(t, peak.Load(), int32(limit))
	assert.Positive(t, peak.Load())
}

// TestWorkers_Run_PanicIsolated verifies that a panicking worker does not
// stop its siblings and is reported.
func TestWorkers_Run_PanicIsolated(t *testing.T) {
	var mu sync.Mutex
	done := []int{}

	ws := NewWorkers(1)
	for i := range 3 {
		ws.Add(WorkerFunc(func(context.Context) {
			if i == 1 {
				panic("boom")
			}
			mu.Lock()
			done = append(done, i)
			mu.Unlock()
		}))
	}

	err := ws.Run(context.Background())

	require.ErrorIs(t, err, ErrWorkerPanic)
	assert.ElementsMatch(t, []int{0, 2}, done)
}

func TestWorkers_Run_CanceledContextStillRunsAll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var seen atomic.Int32
	ws := NewWorkers(2)
	for range 4 {
		ws.Add(WorkerFunc(func(ctx context.Context) {
			if ctx.Err() != nil {
				seen.Add(1)
			}
		}))
	}

	require.NoError(t, ws.Run(ctx))
	assert.Equal(t, int32(4), seen.Load())
}
