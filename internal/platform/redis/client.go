// Package redis connects the shared Redis that backs application-code
// reservations and rate-limit windows.
package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"lscmis/internal/platform/config"
)

// KeyPrefix namespaces every key the service writes to a shared Redis.
const KeyPrefix = "lsc:"

// Key joins parts under KeyPrefix: Key("appcode", "12345") is "lsc:appcode:12345".
func Key(parts ...string) string {
	return KeyPrefix + strings.Join(parts, ":")
}

const healthTimeout = 2 * time.Second

// Client is the connected go-redis client. A nil *Client means Redis is not
// configured; its Health and Close are no-ops.
type Client struct {
	*redis.Client
}

// New connects and pings. It returns (nil, nil) when cfg.URL is empty so callers
// fall back to in-process state.
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.MinIdleConns > 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return &Client{Client: client}, nil
}

// Health pings with a short deadline for /healthz.
func (c *Client) Health(ctx context.Context) error {
	if c == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	return c.Ping(ctx).Err()
}

func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.Client.Close()
}
