// Package handler はuserフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"course_backend/internal/feature/user/domain/entity"
	"course_backend/internal/feature/user/transport/http/dto"
	"course_backend/internal/feature/user/usecase"
	"course_backend/internal/platform/basicauth"
	"course_backend/internal/platform/http/respond"
	"course_backend/internal/platform/validation"
)

// UserUsecase はユーザー操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	Signup(ctx context.Context, in usecase.SignupInput) (*entity.User, error)
}

// UserHandler はユーザー操作のHTTPリクエストを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// GetCurrent は認証済みユーザーの公開情報を返します。
// basicauth.AuthRequired の後段でのみ使用します。
func (h *UserHandler) GetCurrent(c *gin.Context) {
	user, ok := basicauth.CurrentUser(c)
	if !ok {
		respond.Error(c, usecase.ErrAccessDenied)
		return
	}
	c.JSON(http.StatusOK, dto.UserRes{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	})
}

// Create はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー・メール重複時は400とメッセージ一覧を返却
// - 成功時は201、Location: / を返却（ボディなし）
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	// ボディなしは {} として扱い、全項目のバリデーションメッセージを返す
	if err := validation.IgnoreEmptyBody(c.ShouldBindJSON(&req)); err != nil {
		slog.Warn("create user: invalid body", "error", err, "remote_addr", c.ClientIP())
		respond.Error(c, validation.FromBindError(err))
		return
	}

	user, err := h.users.Signup(c.Request.Context(), usecase.SignupInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		Password:     req.Password,
	})
	if err != nil {
		slog.Warn("create user failed", "error", err, "email", req.EmailAddress, "remote_addr", c.ClientIP())
		respond.Error(c, err)
		return
	}

	slog.Info("user created", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.Header("Location", "/")
	c.Status(http.StatusCreated)
}
