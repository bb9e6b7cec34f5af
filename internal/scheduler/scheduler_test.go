package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shareshelf/shareshelf/internal/testing/leaktest"
	"github.com/shareshelf/shareshelf/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount int
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount++
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{
		Done: make(chan struct{}, 10),
	}

	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(100 * time.Millisecond)
	runCount := 0

	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_StopReleasesGoroutines(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := worker.NewPool(1, 10)
	pool.Start()

	sched := New(pool)
	sched.Schedule(5*time.Millisecond, &MockJob{Done: make(chan struct{}, 10)})
	sched.Schedule(5*time.Millisecond, &MockJob{Done: make(chan struct{}, 10)})

	time.Sleep(20 * time.Millisecond)

	sched.Stop()
	pool.Stop()

	checker.Check(0)
}
