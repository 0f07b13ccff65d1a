// Package basicauth authenticates requests carrying HTTP Basic credentials.
package basicauth

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"course_backend/internal/feature/user/domain/entity"
	"course_backend/internal/platform/http/respond"
	"course_backend/internal/shared/apperr"
)

// ContextUser is the gin context key holding the authenticated *entity.User.
const ContextUser = "currentUser"

// Authenticator resolves a credential pair to a user.
// It returns an apperr.KindUnauthorized error when the pair does not match.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that rejects requests without valid
// Basic credentials and stores the resolved user under ContextUser.
// Every credential failure gets the same 401 body.
func AuthRequired(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok {
			slog.Warn("Auth header not found", "path", c.Request.URL.Path, "remote_addr", c.ClientIP())
			respond.Error(c, apperr.New(apperr.KindUnauthorized))
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), email, password)
		if err != nil {
			respond.Error(c, err)
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthRequired.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok && user != nil
}
