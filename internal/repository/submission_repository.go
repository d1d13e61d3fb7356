package repository

import (
	"academy_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(s *model.ExamSubmission) error {
	return r.DB.Create(s).Error
}

func (r *SubmissionRepository) FindByID(id string) (*model.ExamSubmission, error) {
	var s model.ExamSubmission
	err := r.DB.First(&s, "id = ?", id).Error
	return &s, err
}

func (r *SubmissionRepository) FindByIDWithUser(id string) (*model.ExamSubmission, error) {
	var s model.ExamSubmission
	err := r.DB.Preload("User").First(&s, "id = ?", id).Error
	return &s, err
}

func (r *SubmissionRepository) Update(s *model.ExamSubmission) error {
	return r.DB.Save(s).Error
}

func (r *SubmissionRepository) CountAttempts(userID uint, examID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ExamSubmission{}).
		Where("user_id = ? AND exam_id = ?", userID, examID).
		Count(&count).Error
	return count, err
}

func (r *SubmissionRepository) ListByUser(userID uint, courseID uint) ([]model.ExamSubmission, error) {
	var ss []model.ExamSubmission
	query := r.DB.Where("user_id = ?", userID)
	if courseID > 0 {
		query = query.Where("course_id = ?", courseID)
	}
	err := query.Order("created_at desc").Find(&ss).Error
	return ss, err
}

func (r *SubmissionRepository) ListByExam(examID string, page, limit int, status string) ([]model.ExamSubmission, int64, error) {
	var ss []model.ExamSubmission
	var total int64
	query := r.DB.Model(&model.ExamSubmission{}).Where("exam_id = ?", examID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("User").Order("created_at desc").Offset(offset).Limit(limit).Find(&ss).Error
	return ss, total, err
}

// ListStalePending returns pending submissions older than the given age. The
// grading worker sweeps these to recover submissions whose enqueue was lost.
func (r *SubmissionRepository) ListStalePending(olderThan time.Duration, limit int) ([]model.ExamSubmission, error) {
	var ss []model.ExamSubmission
	cutoff := time.Now().Add(-olderThan)
	err := r.DB.Where("status = ? AND created_at < ?", model.SubmissionPending, cutoff).
		Order("created_at asc").Limit(limit).Find(&ss).Error
	return ss, err
}
