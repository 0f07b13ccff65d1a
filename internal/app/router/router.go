package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	coursehandler "course_backend/internal/feature/course/transport/handler"
	userhandler "course_backend/internal/feature/user/transport/handler"
	"course_backend/internal/platform/basicauth"
	"course_backend/internal/platform/config"
	"course_backend/internal/platform/http/handler"
	"course_backend/internal/platform/http/respond"
)

func NewRouter(cfg config.Config, auth basicauth.Authenticator, health *handler.HealthHandler,
	users *userhandler.UserHandler, courses *coursehandler.CourseHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), respond.Recovery(cfg.LogErrors), respond.ErrorHandler(cfg.LogErrors))

	if cfg.CORSEnabled {
		r.Use(cors.Default())
	}

	// 認証不要
	r.GET("/", respond.Welcome)
	// 導通確認用
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)
	r.OPTIONS("/healthz", health.Health)

	api := r.Group("/api")
	// 新規ユーザー登録
	api.POST("/users", users.Create)
	api.GET("/courses", courses.List)
	api.GET("/courses/:id", courses.Get)

	// 認証必須のルート
	// basicauth.AuthRequired() → Authorization: Basic ヘッダーが必要になる
	authed := api.Group("")
	authed.Use(basicauth.AuthRequired(auth))
	{
		authed.GET("/users", users.GetCurrent)
		authed.POST("/courses", courses.Create)
		authed.PUT("/courses/:id", courses.Update)
		authed.DELETE("/courses/:id", courses.Delete)
	}

	r.NoRoute(respond.NotFound)

	return r
}
