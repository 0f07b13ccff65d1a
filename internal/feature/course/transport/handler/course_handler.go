// Package handler はcourseフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/feature/course/transport/http/dto"
	"course_backend/internal/feature/course/usecase"
	userusecase "course_backend/internal/feature/user/usecase"
	"course_backend/internal/platform/basicauth"
	"course_backend/internal/platform/http/respond"
	"course_backend/internal/platform/validation"
)

// CourseUsecase はコース操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type CourseUsecase interface {
	List(ctx context.Context) ([]entity.Course, error)
	Get(ctx context.Context, id uint) (*entity.Course, error)
	Create(ctx context.Context, ownerID uint, in usecase.CourseInput) (*entity.Course, error)
	Authorize(ctx context.Context, actorID, id uint) error
	Update(ctx context.Context, actorID, id uint, patch usecase.CoursePatch) error
	Delete(ctx context.Context, actorID, id uint) error
}

// CourseHandler はコース操作のHTTPリクエストを処理します。
type CourseHandler struct {
	courses CourseUsecase
}

// NewCourseHandler はCourseHandlerの新しいインスタンスを生成します。
func NewCourseHandler(courses CourseUsecase) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List は全コースをオーナー情報付きで返します。
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCourseResList(courses))
}

// Get は指定IDのコースを返します。存在しない・不正なIDは404です。
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		respond.Error(c, usecase.ErrCourseNotFound)
		return
	}
	course, err := h.courses.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCourseRes(*course))
}

// Create は認証済みユーザーをオーナーとしてコースを作成します。
// 成功時は201、Location: /courses/<id> を返却（ボディなし）
func (h *CourseHandler) Create(c *gin.Context) {
	user, ok := basicauth.CurrentUser(c)
	if !ok {
		respond.Error(c, userusecase.ErrAccessDenied)
		return
	}

	var req dto.CreateCourseReq
	if err := validation.IgnoreEmptyBody(c.ShouldBindJSON(&req)); err != nil {
		slog.Warn("create course: invalid body", "error", err, "user_id", user.ID)
		respond.Error(c, validation.FromBindError(err))
		return
	}

	course, err := h.courses.Create(c.Request.Context(), user.ID, usecase.CourseInput{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}

	slog.Info("course created", "course_id", course.ID, "user_id", user.ID)
	c.Header("Location", fmt.Sprintf("/courses/%d", course.ID))
	c.Status(http.StatusCreated)
}

// Update はオーナー本人のみコースを更新できます。
// 存在しないコースは400、他人のコースは403、成功時は204を返却
// ボディの解析は存在・オーナー確認の後に行います。ボディなしは空の更新です。
func (h *CourseHandler) Update(c *gin.Context) {
	user, ok := basicauth.CurrentUser(c)
	if !ok {
		respond.Error(c, userusecase.ErrAccessDenied)
		return
	}
	id, ok := courseID(c)
	if !ok {
		respond.Error(c, usecase.ErrCourseNotFound, respond.NotFoundAs(http.StatusBadRequest))
		return
	}

	if err := h.courses.Authorize(c.Request.Context(), user.ID, id); err != nil {
		respond.Error(c, err, respond.NotFoundAs(http.StatusBadRequest))
		return
	}

	var req dto.UpdateCourseReq
	if err := validation.IgnoreEmptyBody(c.ShouldBindJSON(&req)); err != nil {
		slog.Warn("update course: invalid body", "error", err, "course_id", id, "user_id", user.ID)
		respond.Error(c, validation.FromBindError(err))
		return
	}

	err := h.courses.Update(c.Request.Context(), user.ID, id, usecase.CoursePatch{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	})
	if err != nil {
		respond.Error(c, err, respond.NotFoundAs(http.StatusBadRequest))
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete はオーナー本人のみコースを削除できます。
// 失敗時のステータスはUpdateと同じです。
func (h *CourseHandler) Delete(c *gin.Context) {
	user, ok := basicauth.CurrentUser(c)
	if !ok {
		respond.Error(c, userusecase.ErrAccessDenied)
		return
	}
	id, ok := courseID(c)
	if !ok {
		respond.Error(c, usecase.ErrCourseNotFound, respond.NotFoundAs(http.StatusBadRequest))
		return
	}

	if err := h.courses.Delete(c.Request.Context(), user.ID, id); err != nil {
		respond.Error(c, err, respond.NotFoundAs(http.StatusBadRequest))
		return
	}
	slog.Info("course deleted", "course_id", id, "user_id", user.ID)
	c.Status(http.StatusNoContent)
}

// courseID はパスパラメータ :id を正の整数として解釈します。
func courseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
