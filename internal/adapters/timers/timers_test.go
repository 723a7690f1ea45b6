package timers_test

import (
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/curveforge/meshsync/internal/adapters/timers"
)

func TestRegisterFiresOnce(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		facility := timers.New()
		var fired atomic.Int32
		facility.Register("task", 100*time.Millisecond, func() { fired.Add(1) })
		assert.True(t, facility.IsRegistered("task"))

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, int32(1), fired.Load())
		assert.False(t, facility.IsRegistered("task"))

		time.Sleep(time.Second)
		synctest.Wait()
		assert.Equal(t, int32(1), fired.Load())
	})
}

func TestRegisterReplacesWithoutFiring(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		facility := timers.New()
		var old, replacement atomic.Int32
		facility.Register("task", 100*time.Millisecond, func() { old.Add(1) })

		time.Sleep(50 * time.Millisecond)
		facility.Register("task", 100*time.Millisecond, func() { replacement.Add(1) })

		// The original deadline passes without the old callback running.
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Zero(t, old.Load())

		time.Sleep(40 * time.Millisecond)
		synctest.Wait()
		assert.Zero(t, old.Load())
		assert.Equal(t, int32(1), replacement.Load())
	})
}

func TestUnregister(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		facility := timers.New()
		var fired atomic.Int32
		facility.Register("task", 100*time.Millisecond, func() { fired.Add(1) })

		assert.True(t, facility.Unregister("task"))
		assert.False(t, facility.Unregister("task"))
		assert.False(t, facility.IsRegistered("task"))

		time.Sleep(time.Second)
		synctest.Wait()
		assert.Zero(t, fired.Load())
	})
}

func TestUnregisterUnknownName(t *testing.T) {
	facility := timers.New()
	assert.False(t, facility.Unregister("never-armed"))
	assert.False(t, facility.IsRegistered("never-armed"))
}

func TestIndependentNames(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		facility := timers.New()
		var first, second atomic.Int32
		facility.Register("first", 100*time.Millisecond, func() { first.Add(1) })
		facility.Register("second", 200*time.Millisecond, func() { second.Add(1) })

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, int32(1), first.Load())
		assert.Zero(t, second.Load())
		assert.True(t, facility.IsRegistered("second"))

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, int32(1), second.Load())
	})
}

func TestZeroDelayFiresImmediately(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		facility := timers.New()
		var fired atomic.Int32
		facility.Register("task", 0, func() { fired.Add(1) })

		synctest.Wait()
		assert.Equal(t, int32(1), fired.Load())
	})
}
