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
)

// countingWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type countingWorker struct {
	runCount atomic.Int32
}

func (m *countingWorker) Run(context.Context) {
	m.runCount.Add(1)
}

// blockingWorker returns only when its context ends.
type blockingWorker struct {
	started chan struct{}
}

func (b *blockingWorker) Run(ctx context.Context) {
	close(b.started)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}

	New(w1, w2, w3).Run(context.Background())

	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NotPanics(t, func() { New().Run(context.Background()) })
	assert.NotPanics(t, func() { (&Workers{}).Run(context.Background()) })
}

func TestWorkers_Run_Concurrent(t *testing.T) {
	a := &blockingWorker{started: make(chan struct{})}
	b := &blockingWorker{started: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		New(a, b).Run(ctx)
		close(done)
	}()

	// both must be running at the same time
	<-a.started
	<-b.started

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Workers.Run did not return after cancel")
	}
}

func TestWorkers_Run_WaitsForAll(t *testing.T) {
	var mu sync.Mutex
	finished := 0
	slow := workerFunc(func(context.Context) {
		time.Sleep(20 * time.Millisecond)
		mu.Lock()
		finished++
		mu.Unlock()
	})

	New(slow, slow, slow).Run(context.Background())

	assert.Equal(t, 3, finished)
}

type workerFunc func(ctx context.Context)

func (f workerFunc) Run(ctx context.Context) { f(ctx) }
