// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	courseadapters "course_backend/internal/feature/course/adapters"
	"course_backend/internal/feature/course/usecase"
	"course_backend/internal/platform/cache"
)

// NewCourseRepository creates a CourseRepository implementation.
// If Redis is available, the gorm repository is wrapped in a read-through cache.
// Otherwise, it reads the database directly.
func NewCourseRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.CourseRepository {
	repo := courseadapters.NewCourseRepository(db)
	if rdb != nil {
		return cache.NewCachingCourseRepository(rdb, ttl, repo, "courses")
	}
	return repo
}
