// Package redis wraps the go-redis client for the few ephemeral keys the
// backend keeps: pairing codes waiting to be claimed.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pairingCodePrefix = "pairing:"

type Client struct {
	rdb *redis.Client
}

func New(address, username, password string) *Client {
	return &Client{
		rdb: redis.NewClient(&redis.Options{
			Addr:     address,
			Username: username,
			Password: password,
			DB:       0,
		}),
	}
}

// PutPairingCode stores code -> deviceID until a CMS user claims it.
func (c *Client) PutPairingCode(ctx context.Context, code, deviceID string, ttl time.Duration) error {
	return c.rdb.Set(ctx, pairingCodePrefix+code, deviceID, ttl).Err()
}

// TakePairingCode claims a pairing code, returning the device id it was
// registered for and deleting the key so a code is claimable once.
func (c *Client) TakePairingCode(ctx context.Context, code string) (string, error) {
	key := pairingCodePrefix + code
	deviceID, err := c.rdb.GetDel(ctx, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("pairing code %q not found or expired", code)
	}
	return deviceID, err
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
