// Package respond translates application errors into HTTP responses and
// provides the catch-all handlers for unmatched routes, unhandled errors
// and panics.
package respond

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"course_backend/internal/shared/apperr"
)

// Fixed client-facing messages.
const (
	MsgAccessDenied = "Access Denied"
	MsgForbidden    = "Access denied."
	MsgNotFound     = "Not found"
	MsgPageNotFound = "Page Not Found"
	MsgWelcome      = "Welcome to the REST API project!"
)

// ValidationResponse is the 400 body for rejected writes.
type ValidationResponse struct {
	Errors []string `json:"errors"`
}

// MessageResponse is the body for every fixed-message failure.
type MessageResponse struct {
	Message string `json:"message"`
}

// InternalErrorResponse is the 500 body. Error is always an empty object.
type InternalErrorResponse struct {
	Message string   `json:"message"`
	Error   struct{} `json:"error"`
}

type options struct {
	notFoundStatus int
}

// Option adjusts how Error maps a kind to a status.
type Option func(*options)

// NotFoundAs reports KindNotFound with status instead of 404.
// Course mutations use 400 for a missing course.
func NotFoundAs(status int) Option {
	return func(o *options) { o.notFoundStatus = status }
}

// Error writes the response for err and aborts the chain.
// Unclassified errors are attached to the context and left for ErrorHandler.
func Error(c *gin.Context, err error, opts ...Option) {
	o := options{notFoundStatus: http.StatusNotFound}
	for _, opt := range opts {
		opt(&o)
	}

	ae, _ := apperr.As(err)
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindUniqueness:
		c.AbortWithStatusJSON(http.StatusBadRequest, ValidationResponse{Errors: ae.Messages})
	case apperr.KindNotFound:
		c.AbortWithStatusJSON(o.notFoundStatus, MessageResponse{Message: ae.Message(MsgNotFound)})
	case apperr.KindUnauthorized:
		c.AbortWithStatusJSON(http.StatusUnauthorized, MessageResponse{Message: MsgAccessDenied})
	case apperr.KindForbidden:
		c.AbortWithStatusJSON(http.StatusForbidden, MessageResponse{Message: ae.Message(MsgForbidden)})
	case apperr.KindInternal:
		_ = c.Error(err)
		c.Abort()
	default:
		panic(fmt.Sprintf("respond: unhandled error kind %v", apperr.KindOf(err)))
	}
}

// ErrorHandler is the global catch-all. Errors attached with c.Error that
// no handler answered become a 500 carrying the error message.
func ErrorHandler(logErrors bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		if logErrors {
			slog.Error("Global error handler", "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)
		}
		c.JSON(http.StatusInternalServerError, InternalErrorResponse{Message: err.Error()})
	}
}

// Recovery turns a panic into the same 500 body as ErrorHandler.
func Recovery(logErrors bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		msg := fmt.Sprint(recovered)
		if err, ok := recovered.(error); ok {
			msg = err.Error()
		}
		if logErrors {
			slog.Error("Global error handler: panic", "error", msg, "method", c.Request.Method, "path", c.Request.URL.Path)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, InternalErrorResponse{Message: msg})
	})
}

// NotFound answers routes nothing else matched.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, MessageResponse{Message: MsgPageNotFound})
}

// Welcome answers GET /.
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: MsgWelcome})
}
