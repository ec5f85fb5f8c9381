// Package leaktest detects goroutines left running by a test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettle is how long Check waits for goroutines to wind down
const DefaultSettle = 2 * time.Second

const pollEvery = 10 * time.Millisecond

// GoroutineChecker records a baseline goroutine count
type GoroutineChecker struct {
	t      testing.TB
	before int
	settle time.Duration
}

// NewGoroutineChecker takes the baseline after letting already-finishing goroutines exit
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	time.Sleep(pollEvery)

	return &GoroutineChecker{t: t, before: runtime.NumGoroutine(), settle: DefaultSettle}
}

// WithSettle changes how long Check polls before failing
func (g *GoroutineChecker) WithSettle(d time.Duration) *GoroutineChecker {
	g.settle = d
	return g
}

// Check polls until at most tolerance extra goroutines remain, failing the test after the settle window
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(g.settle)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(pollEvery)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
