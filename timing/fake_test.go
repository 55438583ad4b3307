package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeSchedulerOnce(t *testing.T) {
	t.Parallel()

	s := NewFakeScheduler()
	fired := 0
	s.ScheduleOnce(100*time.Millisecond, func() { fired++ })

	s.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, fired)

	s.Advance(1 * time.Millisecond)
	assert.Equal(t, 1, fired)

	// one-shots do not re-arm
	s.Advance(time.Second)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestFakeSchedulerRepeating(t *testing.T) {
	t.Parallel()

	s := NewFakeScheduler()
	fired := 0
	h := s.ScheduleRepeating(500*time.Millisecond, func() { fired++ })

	s.Advance(2 * time.Second)
	require.Equal(t, 4, fired)

	h.Cancel()
	s.Advance(2 * time.Second)
	assert.Equal(t, 4, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestFakeSchedulerCancelBeforeDue(t *testing.T) {
	t.Parallel()

	s := NewFakeScheduler()
	fired := false
	h := s.ScheduleOnce(time.Second, func() { fired = true })
	h.Cancel()

	s.Advance(5 * time.Second)
	assert.False(t, fired)
}

func TestFakeSchedulerCallbackCanChain(t *testing.T) {
	t.Parallel()

	s := NewFakeScheduler()
	var order []int
	s.ScheduleOnce(100*time.Millisecond, func() {
		order = append(order, 1)
		s.ScheduleOnce(100*time.Millisecond, func() {
			order = append(order, 2)
		})
	})

	s.Advance(time.Second)
	assert.Equal(t, []int{1, 2}, order)
}

func TestFakeSchedulerAdvancesClock(t *testing.T) {
	t.Parallel()

	s := NewFakeScheduler()
	start := s.Now()
	s.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, s.Now().Sub(start))
}
