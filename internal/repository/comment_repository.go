package repository

import (
	"academy_backend/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(c *model.Comment) error {
	return r.DB.Create(c).Error
}

func (r *CommentRepository) FindByID(id string) (*model.Comment, error) {
	var c model.Comment
	err := r.DB.Preload("Author").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *CommentRepository) Update(c *model.Comment) error {
	return r.DB.Save(c).Error
}

func (r *CommentRepository) Delete(id string) error {
	return r.DB.Delete(&model.Comment{}, "id = ?", id).Error
}

// ListByLesson is the authoritative read path for lesson comments; the
// denormalized comment_ids array on the lesson is best-effort only.
func (r *CommentRepository) ListByLesson(courseID uint, lessonRef string, status string) ([]model.Comment, error) {
	var cs []model.Comment
	query := r.DB.Where("course_id = ? AND lesson_id = ?", courseID, lessonRef)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Preload("Author").Order("created_at asc").Find(&cs).Error
	return cs, err
}

func (r *CommentRepository) ListByCourse(courseID uint, page, limit int, status string) ([]model.Comment, int64, error) {
	var cs []model.Comment
	var total int64
	query := r.DB.Model(&model.Comment{}).Where("course_id = ?", courseID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("Author").Order("created_at desc").Offset(offset).Limit(limit).Find(&cs).Error
	return cs, total, err
}
