package suggest

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebouncerCoalescesRapidCalls(t *testing.T) {
	t.Parallel()

	d := newDebouncer(25 * time.Millisecond)
	var fired atomic.Int32

	d.schedule(func() { fired.Add(1) })
	d.schedule(func() { fired.Add(1) })
	d.schedule(func() { fired.Add(1) })

	require.True(t, waitFor(t, time.Second, func() bool {
		return fired.Load() == 1
	}))
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, int32(1), fired.Load(), "only the last scheduled callback may fire")
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	t.Parallel()

	d := newDebouncer(20 * time.Millisecond)
	var fired atomic.Int32

	d.schedule(func() { fired.Add(1) })
	d.stop()

	time.Sleep(60 * time.Millisecond)
	require.Zero(t, fired.Load())
}

func TestDebouncerReusableAfterFire(t *testing.T) {
	t.Parallel()

	d := newDebouncer(5 * time.Millisecond)
	var fired atomic.Int32

	d.schedule(func() { fired.Add(1) })
	require.True(t, waitFor(t, time.Second, func() bool { return fired.Load() == 1 }))

	d.schedule(func() { fired.Add(1) })
	require.True(t, waitFor(t, time.Second, func() bool { return fired.Load() == 2 }))
}

func TestDebouncerStopIsIdempotent(t *testing.T) {
	t.Parallel()

	d := newDebouncer(10 * time.Millisecond)
	d.stop()
	d.schedule(func() {})
	d.stop()
	d.stop()
}
