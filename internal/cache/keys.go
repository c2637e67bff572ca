package cache

import (
	"context"
	"fmt"
	"time"
)

// FeedIndexPrefix is the well-known prefix for cached "all posts" feed pages.
const FeedIndexPrefix = "feed:index"

// FeedIndexTTL bounds how stale the cached main feed may get. Writes do not
// invalidate feed pages; only the TTL and the explicit clear operation do.
const FeedIndexTTL = 20 * time.Second

// FeedPageKey returns the cache key for the given page of the "all posts" feed.
func FeedPageKey(page int) string {
	return fmt.Sprintf("%s:%d", FeedIndexPrefix, page)
}

// Invalidate removes a single cache entry. No-op without a client.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// ClearFeedIndex removes every cached feed page under the feed index prefix.
// This is the explicit clear operation of the page cache; ordinary post
// writes deliberately do not call it.
func ClearFeedIndex(ctx context.Context) error {
	return ClearPrefix(ctx, FeedIndexPrefix)
}

// ClearPrefix deletes all keys beginning with the given prefix using SCAN so
// the operation stays incremental on large keyspaces.
func ClearPrefix(ctx context.Context, prefix string) error {
	if client == nil {
		return nil
	}

	var cursor uint64
	pattern := prefix + "*"
	for {
		keys, next, err := client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
