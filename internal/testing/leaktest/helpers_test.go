package leaktest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingTB captures failures instead of failing the real test
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(string, ...interface{}) { r.failed = true }

func TestCheck_NoLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		done := make(chan struct{})
		go func() { close(done) }()
		<-done
	})
}

func TestCheck_WaitsForSlowGoroutine(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go func() { time.Sleep(50 * time.Millisecond) }()

	checker.Check(0)
}

func TestCheck_ReportsLeak(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec).WithSettle(50 * time.Millisecond)

	stop := make(chan struct{})
	go func() { <-stop }()
	defer close(stop)

	checker.Check(0)
	assert.True(t, rec.failed)
}

func TestCheck_Tolerance(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec).WithSettle(20 * time.Millisecond)

	stop := make(chan struct{})
	go func() { <-stop }()
	defer close(stop)

	checker.Check(1)
	assert.False(t, rec.failed)
}
