package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/feature/course/usecase"
	userentity "course_backend/internal/feature/user/domain/entity"
	"course_backend/internal/platform/basicauth"
	"course_backend/internal/platform/http/respond"
	"course_backend/internal/shared/apperr"
)

// mockCourseUsecase is a mock implementation of the CourseUsecase interface.
type mockCourseUsecase struct {
	ListFunc   func(ctx context.Context) ([]entity.Course, error)
	GetFunc    func(ctx context.Context, id uint) (*entity.Course, error)
	CreateFunc func(ctx context.Context, ownerID uint, in usecase.CourseInput) (*entity.Course, error)
	AuthFunc   func(ctx context.Context, actorID, id uint) error
	UpdateFunc func(ctx context.Context, actorID, id uint, patch usecase.CoursePatch) error
	DeleteFunc func(ctx context.Context, actorID, id uint) error
}

func (m *mockCourseUsecase) List(ctx context.Context) ([]entity.Course, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCourseUsecase) Get(ctx context.Context, id uint) (*entity.Course, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, usecase.ErrCourseNotFound
}

func (m *mockCourseUsecase) Create(ctx context.Context, ownerID uint, in usecase.CourseInput) (*entity.Course, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ownerID, in)
	}
	return &entity.Course{ID: 1, UserID: ownerID}, nil
}

func (m *mockCourseUsecase) Authorize(ctx context.Context, actorID, id uint) error {
	if m.AuthFunc != nil {
		return m.AuthFunc(ctx, actorID, id)
	}
	return nil
}

func (m *mockCourseUsecase) Update(ctx context.Context, actorID, id uint, patch usecase.CoursePatch) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actorID, id, patch)
	}
	return nil
}

func (m *mockCourseUsecase) Delete(ctx context.Context, actorID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actorID, id)
	}
	return nil
}

var joe = &userentity.User{ID: 1, FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com"}

// newCourseRouter wires h behind a stub that authenticates every write as joe.
func newCourseRouter(h *CourseHandler) *gin.Engine {
	router := gin.New()
	router.Use(respond.ErrorHandler(false))
	api := router.Group("/api")
	api.GET("/courses", h.List)
	api.GET("/courses/:id", h.Get)

	authed := api.Group("", func(c *gin.Context) {
		c.Set(basicauth.ContextUser, joe)
		c.Next()
	})
	authed.POST("/courses", h.Create)
	authed.PUT("/courses/:id", h.Update)
	authed.DELETE("/courses/:id", h.Delete)
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCourseHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: courses with owner", func(t *testing.T) {
		uc := &mockCourseUsecase{
			ListFunc: func(ctx context.Context) ([]entity.Course, error) {
				return []entity.Course{{
					ID: 1, Title: "Build a Basic Bookcase", Description: "High-end furniture", EstimatedTime: "12 hours",
					UserID: 1, Owner: entity.Owner{ID: 1, FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com"},
				}}, nil
			},
		}

		w := do(newCourseRouter(NewCourseHandler(uc)), http.MethodGet, "/api/courses", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{
			"id":1,"title":"Build a Basic Bookcase","description":"High-end furniture",
			"estimatedTime":"12 hours","materialsNeeded":"","userId":1,
			"owner":{"id":1,"firstName":"Joe","lastName":"Smith","emailAddress":"joe@smith.com"}
		}]`, w.Body.String())
	})

	t.Run("success: empty list is an array", func(t *testing.T) {
		w := do(newCourseRouter(NewCourseHandler(&mockCourseUsecase{})), http.MethodGet, "/api/courses", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("failure: store error", func(t *testing.T) {
		uc := &mockCourseUsecase{
			ListFunc: func(ctx context.Context) ([]entity.Course, error) { return nil, errors.New("connection refused") },
		}

		w := do(newCourseRouter(NewCourseHandler(uc)), http.MethodGet, "/api/courses", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message":"connection refused","error":{}}`, w.Body.String())
	})
}

func TestCourseHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uc := &mockCourseUsecase{
		GetFunc: func(ctx context.Context, id uint) (*entity.Course, error) {
			if id == 2 {
				return &entity.Course{ID: 2, Title: "t", Description: "d", UserID: 1, Owner: entity.Owner{ID: 1}}, nil
			}
			return nil, usecase.ErrCourseNotFound
		},
	}
	router := newCourseRouter(NewCourseHandler(uc))

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{"success: existing course", "/api/courses/2", http.StatusOK,
			`{"id":2,"title":"t","description":"d","estimatedTime":"","materialsNeeded":"","userId":1,"owner":{"id":1,"firstName":"","lastName":"","emailAddress":""}}`},
		{"failure: missing course", "/api/courses/99", http.StatusNotFound, `{"message":"Course not found"}`},
		{"failure: non-numeric id", "/api/courses/abc", http.StatusNotFound, `{"message":"Course not found"}`},
		{"failure: zero id", "/api/courses/0", http.StatusNotFound, `{"message":"Course not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestCourseHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: owner is the authenticated user", func(t *testing.T) {
		var gotOwner uint
		var gotInput usecase.CourseInput
		uc := &mockCourseUsecase{
			CreateFunc: func(ctx context.Context, ownerID uint, in usecase.CourseInput) (*entity.Course, error) {
				gotOwner, gotInput = ownerID, in
				return &entity.Course{ID: 42, UserID: ownerID}, nil
			},
		}

		w := do(newCourseRouter(NewCourseHandler(uc)), http.MethodPost, "/api/courses",
			`{"title":"New","description":"Desc","estimatedTime":"1h","userId":99}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/courses/42", w.Header().Get("Location"))
		assert.Empty(t, w.Body.String())
		assert.Equal(t, joe.ID, gotOwner)
		assert.Equal(t, usecase.CourseInput{Title: "New", Description: "Desc", EstimatedTime: "1h"}, gotInput)
	})

	t.Run("failure: validation", func(t *testing.T) {
		uc := &mockCourseUsecase{
			CreateFunc: func(ctx context.Context, ownerID uint, in usecase.CourseInput) (*entity.Course, error) {
				return nil, apperr.New(apperr.KindValidation, "title is a required field", "description is a required field")
			},
		}

		w := do(newCourseRouter(NewCourseHandler(uc)), http.MethodPost, "/api/courses", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":["title is a required field","description is a required field"]}`, w.Body.String())
	})

	t.Run("failure: wrong field type", func(t *testing.T) {
		w := do(newCourseRouter(NewCourseHandler(&mockCourseUsecase{})), http.MethodPost, "/api/courses", `{"title":5}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":["title must be a string"]}`, w.Body.String())
	})
}

func TestCourseHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: patch carries only sent fields", func(t *testing.T) {
		var got usecase.CoursePatch
		var gotActor, gotID uint
		uc := &mockCourseUsecase{
			UpdateFunc: func(ctx context.Context, actorID, id uint, patch usecase.CoursePatch) error {
				gotActor, gotID, got = actorID, id, patch
				return nil
			},
		}

		w := do(newCourseRouter(NewCourseHandler(uc)), http.MethodPut, "/api/courses/5", `{"title":"Renamed"}`)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, joe.ID, gotActor)
		assert.Equal(t, uint(5), gotID)
		require.NotNil(t, got.Title)
		assert.Equal(t, "Renamed", *got.Title)
		assert.Nil(t, got.Description)
	})

	t.Run("success: empty body is an empty patch", func(t *testing.T) {
		called := false
		uc := &mockCourseUsecase{
			UpdateFunc: func(ctx context.Context, actorID, id uint, patch usecase.CoursePatch) error {
				called = true
				assert.Equal(t, usecase.CoursePatch{}, patch)
				return nil
			},
		}

		w := do(newCourseRouter(NewCourseHandler(uc)), http.MethodPut, "/api/courses/5", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.True(t, called)
	})

	t.Run("ownership is checked before the body is read", func(t *testing.T) {
		authTests := []struct {
			name           string
			authErr        error
			body           string
			expectedStatus int
			expectedBody   string
		}{
			{"not the owner, empty body", usecase.ErrNotOwner, "", http.StatusForbidden, `{"message":"Access denied."}`},
			{"not the owner, wrong type", usecase.ErrNotOwner, `{"title":5}`, http.StatusForbidden, `{"message":"Access denied."}`},
			{"missing course, empty body", usecase.ErrCourseNotFound, "", http.StatusBadRequest, `{"message":"Course not found"}`},
			{"owner, wrong type", nil, `{"title":5}`, http.StatusBadRequest, `{"errors":["title must be a string"]}`},
		}

		for _, tt := range authTests {
			t.Run(tt.name, func(t *testing.T) {
				uc := &mockCourseUsecase{
					AuthFunc: func(ctx context.Context, actorID, id uint) error { return tt.authErr },
					UpdateFunc: func(ctx context.Context, actorID, id uint, patch usecase.CoursePatch) error {
						t.Error("Update must not be called")
						return nil
					},
				}

				w := do(newCourseRouter(NewCourseHandler(uc)), http.MethodPut, "/api/courses/5", tt.body)

				assert.Equal(t, tt.expectedStatus, w.Code)
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			})
		}
	})

	tests := []struct {
		name           string
		path           string
		body           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"failure: missing course", "/api/courses/99", `{"title":"x"}`, usecase.ErrCourseNotFound,
			http.StatusBadRequest, `{"message":"Course not found"}`},
		{"failure: bad id", "/api/courses/abc", `{"title":"x"}`, nil,
			http.StatusBadRequest, `{"message":"Course not found"}`},
		{"failure: not the owner", "/api/courses/2", `{"title":"x"}`, usecase.ErrNotOwner,
			http.StatusForbidden, `{"message":"Access denied."}`},
		{"failure: blank title", "/api/courses/1", `{"title":""}`, apperr.New(apperr.KindValidation, "title is a required field"),
			http.StatusBadRequest, `{"errors":["title is a required field"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockCourseUsecase{
				UpdateFunc: func(ctx context.Context, actorID, id uint, patch usecase.CoursePatch) error { return tt.err },
			}

			w := do(newCourseRouter(NewCourseHandler(uc)), http.MethodPut, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestCourseHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		path           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"success", "/api/courses/1", nil, http.StatusNoContent, ""},
		{"failure: missing course", "/api/courses/99", usecase.ErrCourseNotFound, http.StatusBadRequest, `{"message":"Course not found"}`},
		{"failure: not the owner", "/api/courses/2", usecase.ErrNotOwner, http.StatusForbidden, `{"message":"Access denied."}`},
		{"failure: store error", "/api/courses/1", errors.New("disk full"), http.StatusInternalServerError, `{"message":"disk full","error":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockCourseUsecase{
				DeleteFunc: func(ctx context.Context, actorID, id uint) error { return tt.err },
			}

			w := do(newCourseRouter(NewCourseHandler(uc)), http.MethodDelete, tt.path, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
