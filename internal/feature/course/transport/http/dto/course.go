// Package dto defines data transfer objects for the course feature's HTTP transport layer.
package dto

import "course_backend/internal/feature/course/domain/entity"

// OwnerRes is the owner projection embedded in every course response.
type OwnerRes struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// CourseRes represents a course as returned by GET /api/courses and GET /api/courses/:id.
type CourseRes struct {
	ID              uint     `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	EstimatedTime   string   `json:"estimatedTime"`
	MaterialsNeeded string   `json:"materialsNeeded"`
	UserID          uint     `json:"userId"`
	Owner           OwnerRes `json:"owner"`
}

// CreateCourseReq represents the request body for POST /api/courses.
// Any userId in the body is ignored; the owner is the authenticated user.
type CreateCourseReq struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	EstimatedTime   string `json:"estimatedTime"`
	MaterialsNeeded string `json:"materialsNeeded"`
}

// UpdateCourseReq represents the request body for PUT /api/courses/:id.
// Omitted fields keep their stored value.
type UpdateCourseReq struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// ToCourseRes converts a domain course to its response shape.
func ToCourseRes(c entity.Course) CourseRes {
	return CourseRes{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID,
		Owner: OwnerRes{
			ID:           c.Owner.ID,
			FirstName:    c.Owner.FirstName,
			LastName:     c.Owner.LastName,
			EmailAddress: c.Owner.EmailAddress,
		},
	}
}

// ToCourseResList converts courses, always returning a non-nil slice.
func ToCourseResList(courses []entity.Course) []CourseRes {
	res := make([]CourseRes, 0, len(courses))
	for _, c := range courses {
		res = append(res, ToCourseRes(c))
	}
	return res
}
