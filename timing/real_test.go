package timing

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealSchedulerOnce(t *testing.T) {
	t.Parallel()

	s := NewRealScheduler()
	done := make(chan struct{})
	s.ScheduleOnce(10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("one-shot callback never fired")
	}
}

func TestRealSchedulerCancelStopsFiring(t *testing.T) {
	t.Parallel()

	s := NewRealScheduler()
	var fired int64
	h := s.ScheduleRepeating(10*time.Millisecond, func() {
		atomic.AddInt64(&fired, 1)
	})

	time.Sleep(100 * time.Millisecond)
	h.Cancel()
	h.Cancel() // idempotent

	// let any in-flight callback drain before sampling
	time.Sleep(50 * time.Millisecond)
	settled := atomic.LoadInt64(&fired)
	assert.Greater(t, settled, int64(0))

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, settled, atomic.LoadInt64(&fired))
}
