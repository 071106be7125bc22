package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikiai/kbaccess/pkg/jwt"
	"github.com/wikiai/kbaccess/pkg/redis"
)

var _ jwt.Denylist = (*redis.Denylist)(nil)

func TestConnect_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://not-redis"})
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "redis://127.0.0.1:1/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: time.Second,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, redis.ErrRedisNotReady))
}

func TestDenylist_Key(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = client.Close() })

	d := redis.NewDenylist(client, "kbaccess:")
	assert.Equal(t, "kbaccess:revoked:abc", d.Key("abc"))
}

func TestDenylist_ExpiredTokenIsNoop(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = client.Close() })

	d := redis.NewDenylist(client, "")
	assert.NoError(t, d.Revoke(context.Background(), "abc", time.Now().Add(-time.Minute)))
}

func TestDenylist_UnreachableServer(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })

	d := redis.NewDenylist(client, "")
	_, err := d.IsRevoked(context.Background(), "abc")
	assert.ErrorIs(t, err, redis.ErrDenylist)

	err = d.Revoke(context.Background(), "abc", time.Now().Add(time.Minute))
	assert.ErrorIs(t, err, redis.ErrDenylist)

	assert.Error(t, redis.Healthcheck(client)(context.Background()))
}
