package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/wbsight/pkg/config"
)

func TestNewClient_Disabled(t *testing.T) {
	cfg := &config.Config{
		Redis: config.RedisConfig{
			Enabled: false,
		},
	}

	client, err := New(cfg)
	require.NoError(t, err)
	assert.False(t, client.Enabled(), "client should be disabled without a Redis config")
}

func TestDisabledConstructor(t *testing.T) {
	client := Disabled()

	assert.False(t, client.Enabled())
	assert.NoError(t, client.Close())
}

func TestCache_Disabled(t *testing.T) {
	client := Disabled()
	cache := NewCache(client, "test")
	ctx := context.Background()

	// When Redis is disabled, cache operations should be no-ops
	var result string
	found, err := cache.Get(ctx, "key", &result)
	require.NoError(t, err)
	assert.False(t, found, "disabled cache must report a miss")

	assert.NoError(t, cache.Set(ctx, "key", "value", TTLReport))
	assert.NoError(t, cache.Delete(ctx, "key"))
}

func TestReportKey(t *testing.T) {
	got := ReportKey("4f1c9a1e-1111-2222-3333-444455556666")
	assert.Equal(t, "report:4f1c9a1e-1111-2222-3333-444455556666", got)
}
