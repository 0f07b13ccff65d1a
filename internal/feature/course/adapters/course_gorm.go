package adapters

import (
	"context"

	"gorm.io/gorm"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/feature/course/usecase"
)

// courseColumns selects a course plus the owner's public fields. The
// password hash is never read on this path.
const courseColumns = "courses.id, courses.title, courses.description, courses.estimated_time, " +
	"courses.materials_needed, courses.user_id, users.first_name AS owner_first_name, " +
	"users.last_name AS owner_last_name, users.email_address AS owner_email_address"

// courseGorm はCourseRepositoryインターフェースのGORM実装です。
type courseGorm struct {
	db *gorm.DB
}

var _ usecase.CourseRepository = (*courseGorm)(nil)

// NewCourseRepository は指定されたDB接続でcourseGormの新しいインスタンスを生成します。
func NewCourseRepository(db *gorm.DB) *courseGorm {
	return &courseGorm{db: db}
}

func (r *courseGorm) withOwner(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&CourseModel{}).
		Select(courseColumns).
		Joins("JOIN users ON users.id = courses.user_id")
}

// List はID順にすべてのコースを所有者情報付きで返します。
func (r *courseGorm) List(ctx context.Context) ([]entity.Course, error) {
	var rows []courseRow
	if err := r.withOwner(ctx).Order("courses.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Course, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out, nil
}

// FindByID はIDでコースを取得します。
// 存在しない場合、usecase.ErrCourseNotFoundを返します。
func (r *courseGorm) FindByID(ctx context.Context, id uint) (*entity.Course, error) {
	var rows []courseRow
	if err := r.withOwner(ctx).Where("courses.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, usecase.ErrCourseNotFound
	}
	c := rows[0].ToEntity()
	return &c, nil
}

// Create はコースを追加し、採番されたIDをエンティティに反映します。
func (r *courseGorm) Create(ctx context.Context, c *entity.Course) error {
	m := CourseModelFromEntity(c)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	c.ID = m.ID
	return nil
}

// Update は編集可能なカラムのみを更新します。user_idは変更しません。
// 空文字列への更新も反映するため、カラムを明示的に選択します。
func (r *courseGorm) Update(ctx context.Context, c *entity.Course) error {
	return r.db.WithContext(ctx).
		Model(&CourseModel{ID: c.ID}).
		Select("title", "description", "estimated_time", "materials_needed").
		Updates(CourseModelFromEntity(c)).Error
}

// Delete はIDでコースを削除します。
func (r *courseGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&CourseModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCourseNotFound
	}
	return nil
}
