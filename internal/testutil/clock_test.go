package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_StartsAtGivenTime(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c := NewClock(start)
	assert.True(t, c.Now().Equal(start))
}

func TestClock_AdvanceAndSet(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c := NewClock(start)

	got := c.Advance(90 * time.Second)
	assert.True(t, got.Equal(start.Add(90*time.Second)))
	assert.True(t, c.Now().Equal(got))

	c.Set(start.Add(-time.Hour))
	assert.True(t, c.Now().Equal(start.Add(-time.Hour)))
}

func TestClock_ThreadSafe(t *testing.T) {
	c := NewClock(time.Unix(0, 0))
	const workers = 50

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			c.Advance(time.Second)
			_ = c.Now()
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(workers), c.Now().Unix())
}
