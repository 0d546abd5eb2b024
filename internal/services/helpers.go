package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/employability-assessment/internal/cache"
	"github.com/SAP-F-2025/employability-assessment/internal/events"
)

// publish sends an event without failing the caller; the database is the source of truth
func publish(ctx context.Context, publisher events.EventPublisher, logger *slog.Logger, event *events.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Error("Failed to publish event",
			"event_id", event.ID,
			"event_type", event.Type,
			"error", err)
	}
}

// invalidateAdminViews drops cached admin listings and stats after a write
func invalidateAdminViews(ctx context.Context, c cache.CacheService, logger *slog.Logger) {
	if err := c.DeletePattern(ctx, cache.PatternAdmin); err != nil {
		logger.Warn("Failed to invalidate admin cache", "error", err)
	}
}

// cachedOrLoad reads key from the cache, falling back to load and storing its result
func cachedOrLoad[T any](ctx context.Context, c cache.CacheService, logger *slog.Logger, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var cached T
	err := c.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Warn("Cache read failed, loading from database", "key", key, "error", err)
	}

	value, err := load()
	if err != nil {
		return value, err
	}
	if err := c.Set(ctx, key, value, ttl); err != nil {
		logger.Warn("Cache write failed", "key", key, "error", err)
	}
	return value, nil
}
