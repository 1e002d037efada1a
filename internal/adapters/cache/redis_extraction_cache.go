package cache

import (
	"context"
	"coordinate-converter-service/internal/platform/obs"
	"coordinate-converter-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const extractionKeyPrefix = "extraction:"

// RedisExtractionCache is a Redis-backed variant of the extraction
// cache. Entries expire after TTL so the collaborator gets asked again
// eventually.
type RedisExtractionCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisExtractionCache(client *redis.Client, ttl time.Duration) *RedisExtractionCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisExtractionCache{Client: client, TTL: ttl}
}

// Entries are stored as JSON under the same key names the
// collaborator's wire contract uses.
type cachedFields struct {
	XCoord       string `json:"x_coord"`
	YCoord       string `json:"y_coord"`
	SourceFormat string `json:"source_format"`
	TargetFormat string `json:"target_format"`
	TargetCSName string `json:"target_cs_name"`
	Zone         string `json:"zone"`
}

func extractionKey(query string) string { return extractionKeyPrefix + query }

// Fetch the cached field set for one query.
func (r *RedisExtractionCache) Get(ctx context.Context, query string) (_ ports.ExtractedFields, _ bool, err error) {
	defer obs.Time(ctx, "extraction.cache.Get")(&err)

	if r.Client == nil {
		return ports.ExtractedFields{}, false, errors.New("extraction cache: redis client is nil")
	}

	if strings.TrimSpace(query) == "" {
		return ports.ExtractedFields{}, false, nil
	}

	val, err := r.Client.Get(ctx, extractionKey(query)).Result()
	if errors.Is(err, redis.Nil) {
		return ports.ExtractedFields{}, false, nil
	}
	if err != nil {
		return ports.ExtractedFields{}, false, fmt.Errorf("get extraction cache: %w", err)
	}

	var c cachedFields
	if err := json.Unmarshal([]byte(val), &c); err != nil {
		return ports.ExtractedFields{}, false, fmt.Errorf("get extraction cache: decode entry: %w", err)
	}

	return ports.ExtractedFields{
		XCoord:       c.XCoord,
		YCoord:       c.YCoord,
		SourceFormat: c.SourceFormat,
		TargetFormat: c.TargetFormat,
		TargetCSName: c.TargetCSName,
		Zone:         c.Zone,
	}, true, nil
}

// Store the field set returned for one query.
func (r *RedisExtractionCache) Put(ctx context.Context, query string, fields ports.ExtractedFields) error {
	if r.Client == nil {
		return errors.New("extraction cache: redis client is nil")
	}

	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("insert extraction cache: empty query key")
	}

	b, err := json.Marshal(cachedFields{
		XCoord:       fields.XCoord,
		YCoord:       fields.YCoord,
		SourceFormat: fields.SourceFormat,
		TargetFormat: fields.TargetFormat,
		TargetCSName: fields.TargetCSName,
		Zone:         fields.Zone,
	})
	if err != nil {
		return fmt.Errorf("insert extraction cache: encode entry: %w", err)
	}

	if err := r.Client.Set(ctx, extractionKey(query), b, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert extraction cache query=%q: %w", query, err)
	}

	return nil
}
