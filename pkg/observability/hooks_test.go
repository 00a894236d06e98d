package observability

import (
	"context"
	"testing"
	"time"
)

type testSolverHooks struct {
	starts, completes int
}

func (h *testSolverHooks) OnSolveStart(context.Context, int, int) { h.starts++ }
func (h *testSolverHooks) OnSolveComplete(context.Context, int, int, int64, time.Duration, error) {
	h.completes++
}

type testCacheHooks struct{ hits int }

func (h *testCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *testCacheHooks) OnCacheMiss(context.Context, string)     {}
func (h *testCacheHooks) OnCacheSet(context.Context, string, int) {}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopSolverHooks{}
	s.OnSolveStart(ctx, 10, 15)
	s.OnSolveComplete(ctx, 10, 15, 42, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "solve")
	c.OnCacheMiss(ctx, "solve")
	c.OnCacheSet(ctx, "solve", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/solve")
	h.OnResponse(ctx, "POST", "/v1/solve", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("Solver() should return NoopSolverHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customSolver := &testSolverHooks{}
	SetSolverHooks(customSolver)
	if Solver() != customSolver {
		t.Error("SetSolverHooks should set custom hooks")
	}
	Solver().OnSolveStart(context.Background(), 3, 3)
	if customSolver.starts != 1 {
		t.Error("custom solver hook did not receive the event")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// nil registrations are ignored
	SetSolverHooks(nil)
	if Solver() != customSolver {
		t.Error("SetSolverHooks(nil) should keep the current hooks")
	}
}
