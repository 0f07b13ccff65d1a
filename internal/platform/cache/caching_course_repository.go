// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/feature/course/usecase"
)

// CachingCourseRepository decorates a CourseRepository with Redis caching.
// Reads go through the cache; every write drops the keys it can affect.
type CachingCourseRepository struct {
	inner     usecase.CourseRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.CourseRepository = (*CachingCourseRepository)(nil)

// NewCachingCourseRepository decorates a CourseRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "courses".
func NewCachingCourseRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CourseRepository, namespace string) *CachingCourseRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "courses"
	}
	return &CachingCourseRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List returns all courses, from cache when possible.
func (c *CachingCourseRepository) List(ctx context.Context) ([]entity.Course, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()
	var out []entity.Course
	if c.load(ctx, key, &out) {
		return out, nil
	}

	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, out)
	return out, nil
}

// FindByID returns one course, from cache when possible. Misses on the
// underlying store are not cached.
func (c *CachingCourseRepository) FindByID(ctx context.Context, id uint) (*entity.Course, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.courseKey(id)
	var cached entity.Course
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, out)
	return out, nil
}

// Create inserts a course and invalidates the list entry.
func (c *CachingCourseRepository) Create(ctx context.Context, course *entity.Course) error {
	if err := c.inner.Create(ctx, course); err != nil {
		return err
	}
	c.invalidate(ctx, c.listKey())
	return nil
}

// Update writes a course and invalidates the list and per-course entries.
func (c *CachingCourseRepository) Update(ctx context.Context, course *entity.Course) error {
	if err := c.inner.Update(ctx, course); err != nil {
		return err
	}
	c.invalidate(ctx, c.listKey(), c.courseKey(course.ID))
	return nil
}

// Delete removes a course and invalidates the list and per-course entries.
func (c *CachingCourseRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, c.listKey(), c.courseKey(id))
	return nil
}

// load decodes key into dst. Corrupted entries are deleted.
func (c *CachingCourseRepository) load(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// store writes v under key (best effort).
func (c *CachingCourseRepository) store(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		slog.Warn("course cache write failed", "key", key, "error", err)
	}
}

func (c *CachingCourseRepository) invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		// Stale entries expire with the TTL.
		slog.Warn("course cache invalidation failed", "keys", keys, "error", err)
	}
}

func (c *CachingCourseRepository) listKey() string {
	return c.namespace + ":list"
}

func (c *CachingCourseRepository) courseKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}
