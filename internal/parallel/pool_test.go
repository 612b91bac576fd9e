package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewPool(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("pool should be running after creation")
	}
}

func TestNewPoolDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewPool(%d).Workers() = %d, want %d", n, got, want)
		}
		pool.Close()
	}
}

func TestExecuteRunsEveryIndex(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	const n = 1000
	var seen [n]atomic.Int32
	ran, err := pool.Execute(context.Background(), n, func(i int) {
		seen[i].Add(1)
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if ran != n {
		t.Errorf("Execute() ran %d tasks, want %d", ran, n)
	}
	for i := range seen {
		if c := seen[i].Load(); c != 1 {
			t.Fatalf("task %d ran %d times, want 1", i, c)
		}
	}
}

func TestExecuteZeroTasks(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	ran, err := pool.Execute(context.Background(), 0, func(int) {
		t.Error("task should not run")
	})
	if ran != 0 || err != nil {
		t.Errorf("Execute(0) = (%d, %v), want (0, nil)", ran, err)
	}
}

func TestExecuteCancelled(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var count atomic.Int32
	ran, err := pool.Execute(ctx, 100, func(int) { count.Add(1) })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
	if ran != 0 || count.Load() != 0 {
		t.Errorf("Execute() ran %d (counted %d), want 0", ran, count.Load())
	}
}

func TestExecuteCancelledMidway(t *testing.T) {
	pool := NewPool(1)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var count atomic.Int32
	ran, err := pool.Execute(ctx, 10000, func(i int) {
		if i == 0 {
			cancel()
		}
		count.Add(1)
		time.Sleep(10 * time.Microsecond)
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Execute() error = %v, want context.Canceled", err)
	}
	if int(count.Load()) != ran {
		t.Errorf("counted %d tasks, Execute reported %d", count.Load(), ran)
	}
	if ran >= 10000 {
		t.Errorf("Execute() ran all tasks despite cancellation")
	}
}

func TestExecuteAfterClose(t *testing.T) {
	pool := NewPool(2)
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool should not be running after Close")
	}
	if _, err := pool.Execute(context.Background(), 3, func(int) {}); !errors.Is(err, ErrClosed) {
		t.Errorf("Execute() after Close error = %v, want ErrClosed", err)
	}
}

func TestCloseIdempotent(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()
}

func TestExecuteConcurrentCallers(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var total atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := pool.Execute(context.Background(), 50, func(int) { total.Add(1) }); err != nil {
				t.Errorf("Execute() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if total.Load() != 8*50 {
		t.Errorf("total = %d, want %d", total.Load(), 8*50)
	}
}

func TestExecuteUnevenWork(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	// Slow tasks all land on worker 0; stealing lets the rest finish.
	var count atomic.Int32
	_, err := pool.Execute(context.Background(), 64, func(i int) {
		if i%4 == 0 {
			time.Sleep(time.Millisecond)
		}
		count.Add(1)
	})
	if err != nil {
		t.Fatal(err)
	}
	if count.Load() != 64 {
		t.Errorf("count = %d, want 64", count.Load())
	}
}

func BenchmarkExecute(b *testing.B) {
	pool := NewPool(0)
	defer pool.Close()

	ctx := context.Background()
	b.ReportAllocs()
	for b.Loop() {
		_, _ = pool.Execute(ctx, 64, func(int) {})
	}
}
