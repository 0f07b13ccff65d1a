package usecase

import (
	"context"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/platform/validation"
)

// CourseRepository はコースの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type CourseRepository interface {
	// List は全コースをオーナー情報付きで取得します。
	List(ctx context.Context) ([]entity.Course, error)
	// FindByID はIDに一致するコースを取得します。存在しない場合、ErrCourseNotFound を返します。
	FindByID(ctx context.Context, id uint) (*entity.Course, error)
	Create(ctx context.Context, course *entity.Course) error
	// Update は編集可能な項目のみを書き込みます。UserIDは変更しません。
	Update(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, id uint) error
}

// CourseInput は新規コースの編集可能な項目です。
type CourseInput struct {
	Title           string
	Description     string
	EstimatedTime   string
	MaterialsNeeded string
}

// CoursePatch は更新内容です。nilの項目は変更しません。
type CoursePatch struct {
	Title           *string
	Description     *string
	EstimatedTime   *string
	MaterialsNeeded *string
}

// courseRules は保存されるすべてのコースが満たす制約です。
type courseRules struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func validateCourse(c *entity.Course) error {
	return validation.Struct(courseRules{Title: c.Title, Description: c.Description})
}

// CourseUsecase はコース操作のビジネスロジックを提供します。
type CourseUsecase struct {
	repo CourseRepository
}

// NewCourseUsecase は指定されたリポジトリで CourseUsecase を生成します。
func NewCourseUsecase(r CourseRepository) *CourseUsecase {
	return &CourseUsecase{repo: r}
}

// List は全コースを返します。
func (u *CourseUsecase) List(ctx context.Context) ([]entity.Course, error) {
	return u.repo.List(ctx)
}

// Get はIDに一致するコースを返します。存在しない場合は ErrCourseNotFound です。
func (u *CourseUsecase) Get(ctx context.Context, id uint) (*entity.Course, error) {
	return u.repo.FindByID(ctx, id)
}

// Create は ownerID をオーナーとして新規コースを保存します。
func (u *CourseUsecase) Create(ctx context.Context, ownerID uint, in CourseInput) (*entity.Course, error) {
	course := &entity.Course{
		Title:           in.Title,
		Description:     in.Description,
		EstimatedTime:   in.EstimatedTime,
		MaterialsNeeded: in.MaterialsNeeded,
		UserID:          ownerID,
	}
	if err := validateCourse(course); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Update は actorID として patch をコースに適用します。
// コースが存在しない場合は ErrCourseNotFound、オーナーでない場合は ErrNotOwner を返します。
func (u *CourseUsecase) Update(ctx context.Context, actorID, id uint, patch CoursePatch) error {
	course, err := u.owned(ctx, actorID, id)
	if err != nil {
		return err
	}

	if patch.Title != nil {
		course.Title = *patch.Title
	}
	if patch.Description != nil {
		course.Description = *patch.Description
	}
	if patch.EstimatedTime != nil {
		course.EstimatedTime = *patch.EstimatedTime
	}
	if patch.MaterialsNeeded != nil {
		course.MaterialsNeeded = *patch.MaterialsNeeded
	}
	if err := validateCourse(course); err != nil {
		return err
	}
	return u.repo.Update(ctx, course)
}

// Authorize はコースが存在し、actorID がオーナーであることを確認します。
func (u *CourseUsecase) Authorize(ctx context.Context, actorID, id uint) error {
	_, err := u.owned(ctx, actorID, id)
	return err
}

// Delete は actorID としてコースを削除します。確認内容は Update と同じです。
func (u *CourseUsecase) Delete(ctx context.Context, actorID, id uint) error {
	if _, err := u.owned(ctx, actorID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *CourseUsecase) owned(ctx context.Context, actorID, id uint) (*entity.Course, error) {
	course, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !course.IsOwnedBy(actorID) {
		return nil, ErrNotOwner
	}
	return course, nil
}
