package torrentapi

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedPacerDisabled(t *testing.T) {
	p := NewFixedPacer(0)
	assert.Equal(t, time.Duration(0), p.Interval())
	assert.NoError(t, p.Wait(context.Background()))

	assert.Equal(t, time.Duration(0), NewFixedPacer(-time.Second).Interval())
}

func TestFixedPacerDisabledHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, NewFixedPacer(0).Wait(ctx), context.Canceled)
}

func TestFixedPacerWaits(t *testing.T) {
	p := NewFixedPacer(20 * time.Millisecond)

	start := time.Now()
	require.NoError(t, p.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestFixedPacerCancelled(t *testing.T) {
	p := NewFixedPacer(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := p.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestFixedPacerSerializesWaits(t *testing.T) {
	const interval = 15 * time.Millisecond
	p := NewFixedPacer(interval)

	var wg sync.WaitGroup
	start := time.Now()
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, p.Wait(context.Background()))
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, time.Since(start), 3*interval)
}
