// Package cache remembers which FAQ entry answered a normalized query, so
// repeated questions skip the similarity scan.
package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"

	"faq-bot/internal/models"
)

const keyPrefix = "faq:match:"

// Client is the part of *redis.Client the cache needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// MatchCache maps queries to positions in one specific collection. Keys
// carry the collection fingerprint, so entries written for another FAQ
// file are never read.
type MatchCache struct {
	client Client
	ttl    time.Duration
	scope  string
	size   int
}

func NewMatchCache(client Client, items []models.FAQItem, ttl time.Duration) *MatchCache {
	return &MatchCache{
		client: client,
		ttl:    ttl,
		scope:  keyPrefix + Fingerprint(items) + ":",
		size:   len(items),
	}
}

// Get returns the cached position for query. ok is false on a miss.
func (c *MatchCache) Get(ctx context.Context, query string) (idx int, ok bool, err error) {
	idx, err = c.client.Get(ctx, c.key(query)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if idx < 0 || idx >= c.size {
		return 0, false, nil
	}
	return idx, true, nil
}

func (c *MatchCache) Set(ctx context.Context, query string, idx int) error {
	return c.client.Set(ctx, c.key(query), idx, c.ttl).Err()
}

func (c *MatchCache) key(query string) string {
	return c.scope + strconv.FormatUint(xxhash.Sum64String(query), 16)
}

// Fingerprint hashes the collection contents in order.
func Fingerprint(items []models.FAQItem) string {
	d := xxhash.New()
	for _, item := range items {
		_, _ = d.WriteString(item.Question)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(item.Answer)
		_, _ = d.Write([]byte{0x1e})
	}
	return strconv.FormatUint(d.Sum64(), 16)
}
