package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisClient_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	rc := NewRedisClient(mr.Addr(), "", 0)
	require.NoError(t, rc.Connect(ctx))
	assert.NoError(t, rc.HealthCheck(ctx))

	assert.NoError(t, rc.Close())
	assert.Nil(t, rc.Client)
	assert.ErrorIs(t, rc.HealthCheck(ctx), ErrClientClosed)

	// second close is a no-op
	assert.NoError(t, rc.Close())
}

func TestRedisClient_Password(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("pw")
	ctx := context.Background()

	bad := NewRedisClient(mr.Addr(), "wrong", 0)
	defer bad.Close()
	assert.Error(t, bad.Connect(ctx))

	good := NewRedisClient(mr.Addr(), "pw", 0)
	defer good.Close()
	assert.NoError(t, good.Connect(ctx))
}

func TestRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	rc := NewRedisClient(addr, "", 0)
	defer rc.Close()

	err := rc.Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), addr)
	assert.Error(t, rc.HealthCheck(context.Background()))
}
