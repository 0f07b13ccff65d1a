// Package adapters はcourseフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"time"

	"course_backend/internal/feature/course/domain/entity"
)

// CourseModel is the GORM model for the courses table.
type CourseModel struct {
	ID              uint   `gorm:"primaryKey"`
	Title           string `gorm:"size:255;not null"`
	Description     string `gorm:"type:text;not null"`
	EstimatedTime   string `gorm:"size:255"`
	MaterialsNeeded string `gorm:"type:text"`
	UserID          uint   `gorm:"index;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName returns the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}

// courseRow is one course joined with its owner's public columns.
type courseRow struct {
	ID                uint
	Title             string
	Description       string
	EstimatedTime     string
	MaterialsNeeded   string
	UserID            uint
	OwnerFirstName    string
	OwnerLastName     string
	OwnerEmailAddress string
}

// ToEntity converts the joined row to a domain entity.
func (r *courseRow) ToEntity() entity.Course {
	return entity.Course{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		EstimatedTime:   r.EstimatedTime,
		MaterialsNeeded: r.MaterialsNeeded,
		UserID:          r.UserID,
		Owner: entity.Owner{
			ID:           r.UserID,
			FirstName:    r.OwnerFirstName,
			LastName:     r.OwnerLastName,
			EmailAddress: r.OwnerEmailAddress,
		},
	}
}

// CourseModelFromEntity converts a domain entity to a GORM model.
func CourseModelFromEntity(c *entity.Course) *CourseModel {
	return &CourseModel{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID,
	}
}
