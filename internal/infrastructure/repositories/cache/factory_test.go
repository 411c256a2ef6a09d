package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_CreateCache(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "memory backend",
			config: Config{Type: CacheTypeMemory},
		},
		{
			name:    "unknown backend",
			config:  Config{Type: CacheType("memcached")},
			wantErr: true,
		},
		{
			name: "redis backend with unreachable server",
			config: Config{
				Type:     CacheTypeRedis,
				RedisURL: "localhost:1", // nothing listens here
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewFactory().CreateCache(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, c)
				assert.NoError(t, c.Close())
			}
		})
	}
}
