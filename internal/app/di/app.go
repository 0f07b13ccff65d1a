package di

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"course_backend/internal/app/router"
	coursehandler "course_backend/internal/feature/course/transport/handler"
	courseusecase "course_backend/internal/feature/course/usecase"
	useradapters "course_backend/internal/feature/user/adapters"
	userhandler "course_backend/internal/feature/user/transport/handler"
	userusecase "course_backend/internal/feature/user/usecase"
	"course_backend/internal/platform/config"
	"course_backend/internal/platform/http/handler"
)

// NewApp wires repositories, usecases and handlers into a gin engine.
// rdb may be nil, in which case courses are read without a cache.
func NewApp(cfg config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Repository
	userRepo := useradapters.NewUserRepository(db)
	courseRepo := NewCourseRepository(rdb, db, cfg.CourseCacheTTL)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo)
	courseUC := courseusecase.NewCourseUsecase(courseRepo)

	// Handler
	userH := userhandler.NewUserHandler(userUC)
	courseH := coursehandler.NewCourseHandler(courseUC)
	healthH := handler.NewHealthHandler(sqlDB)

	return router.NewRouter(cfg, userUC, healthH, userH, courseH), nil
}
