package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGet(t *testing.T) {
	c := New()

	require.NoError(t, c.Set("k", "v", time.Second))

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCache_SetRejectsInvalidInput(t *testing.T) {
	c := New()

	assert.ErrorIs(t, c.Set("", "v", time.Second), ErrEmptyKey)
	assert.ErrorIs(t, c.Set("k", "v", 0), ErrInvalidTTL)
	assert.ErrorIs(t, c.Set("k", "v", -time.Second), ErrInvalidTTL)
}

func TestCache_Expiry(t *testing.T) {
	c := New()

	require.NoError(t, c.Set("k", "v", 50*time.Millisecond))
	time.Sleep(80 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Stats().Size)
}

func TestCache_LazyExpiryAgreesWithTimer(t *testing.T) {
	base := time.Now()
	c := &ttlCache{
		entries: make(map[string]*entry),
		now:     func() time.Time { return base },
	}

	require.NoError(t, c.Set("k", "v", time.Hour))

	// Move the clock past the ttl without letting the timer fire
	c.now = func() time.Time { return base.Add(2 * time.Hour) }

	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Empty(t, c.entries)
}

func TestCache_ResetRestartsCountdown(t *testing.T) {
	c := New()

	require.NoError(t, c.Set("k", 1, time.Second))
	time.Sleep(700 * time.Millisecond)
	require.NoError(t, c.Set("k", 2, 2*time.Second))
	time.Sleep(800 * time.Millisecond)

	// 1.5s after the first Set: the original timer must not evict the replacement
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestCache_Delete(t *testing.T) {
	c := New()
	require.NoError(t, c.Set("k", "v", time.Minute))

	assert.True(t, c.Delete("k"))
	assert.False(t, c.Delete("k"))

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCache_InvalidateByPrefix(t *testing.T) {
	c := New()
	require.NoError(t, c.Set("balances:0.0.1:25", 1, time.Minute))
	require.NoError(t, c.Set("balances:0.0.2:25", 2, time.Minute))
	require.NoError(t, c.Set("transfers:0.0.1:25", 3, time.Minute))

	removed := c.InvalidateByPrefix("balances:")
	assert.Equal(t, 2, removed)

	_, ok := c.Get("transfers:0.0.1:25")
	assert.True(t, ok)
	assert.Equal(t, []string{"transfers:0.0.1:25"}, c.Stats().Keys)
}

func TestCache_Clear(t *testing.T) {
	c := New()
	require.NoError(t, c.Set("a", 1, time.Minute))
	require.NoError(t, c.Set("b", 2, time.Minute))

	c.Clear()

	assert.Equal(t, Stats{Size: 0, Keys: []string{}}, c.Stats())
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := BuildKey("k", string(rune('a'+i%26)))
			_ = c.Set(key, i, time.Minute)
			c.Get(key)
			c.InvalidateByPrefix("k:z")
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Stats().Size, 26)
}

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "balances:0.0.1:25", BuildKey("balances", "0.0.1", "25"))
	assert.Equal(t, "token", BuildKey("token"))
}
