package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		ttl     time.Duration
		wantErr error
	}{
		{
			name:  "valid key-value",
			key:   "test-key",
			value: "test-value",
			ttl:   5 * time.Minute,
		},
		{
			name:  "empty value",
			key:   "empty-value",
			value: "",
			ttl:   5 * time.Minute,
		},
		{
			name:    "zero TTL expires immediately",
			key:     "zero-ttl",
			value:   "v",
			ttl:     0,
			wantErr: ErrKeyExpired,
		},
		{
			name:    "negative TTL is already expired",
			key:     "neg-ttl",
			value:   "v",
			ttl:     -1 * time.Minute,
			wantErr: ErrKeyExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewMemoryCache()
			ctx := context.Background()

			require.NoError(t, c.Set(ctx, tt.key, tt.value, tt.ttl))

			if tt.wantErr == ErrKeyExpired {
				time.Sleep(1 * time.Millisecond)
			}

			got, err := c.Get(ctx, tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.value, got)
			}
		})
	}
}

func TestMemoryCache_GetMissingKey(t *testing.T) {
	c := NewMemoryCache()

	got, err := c.Get(context.Background(), "never-set")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Empty(t, got)
	assert.True(t, IsMiss(err))
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryCache_SetSweepsExpiredEntries(t *testing.T) {
	c := NewMemoryCache().(*MemoryCache)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "stale", "v", -1*time.Second))
	require.NoError(t, c.Set(ctx, "fresh", "v", time.Minute))

	// The second Set sweeps the stale entry
	assert.Equal(t, 1, c.Size())
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = c.Set(ctx, fmt.Sprintf("key-%d", i), "value", time.Minute)
		}(i)
		go func(i int) {
			defer wg.Done()
			_, _ = c.Get(ctx, fmt.Sprintf("key-%d", i))
		}(i)
	}
	wg.Wait()

	val, err := c.Get(ctx, "key-17")
	assert.NoError(t, err)
	assert.Equal(t, "value", val)
}
