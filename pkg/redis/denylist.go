package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist stores revoked token ids as keys that expire with the token.
// It satisfies jwt.Denylist.
type Denylist struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewDenylist returns a Denylist storing keys under prefix + "revoked:".
func NewDenylist(client redis.UniversalClient, prefix string) *Denylist {
	return &Denylist{client: client, prefix: prefix, now: time.Now}
}

// Key returns the Redis key used for tokenID.
func (d *Denylist) Key(tokenID string) string {
	return d.prefix + "revoked:" + tokenID
}

// Revoke marks tokenID as revoked until the given time. Tokens that have
// already expired are ignored.
func (d *Denylist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(d.now())
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, d.Key(tokenID), 1, ttl).Err(); err != nil {
		return errors.Join(ErrDenylist, err)
	}
	return nil
}

// IsRevoked reports whether tokenID has been revoked.
func (d *Denylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.Key(tokenID)).Result()
	if err != nil {
		return false, errors.Join(ErrDenylist, err)
	}
	return n > 0, nil
}
