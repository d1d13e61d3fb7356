package repository

import (
	"academy_backend/internal/model"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) Create(exam *model.Exam) error {
	return r.DB.Create(exam).Error
}

func (r *ExamRepository) FindByID(id string) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.First(&exam, "id = ?", id).Error
	return &exam, err
}

func (r *ExamRepository) FindByIDWithQuestions(id string) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("exam_questions.order asc, exam_questions.created_at asc")
		}).
		First(&exam, "id = ?", id).Error
	return &exam, err
}

func (r *ExamRepository) ListByCourse(courseID uint) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.DB.Where("course_id = ?", courseID).Order("created_at desc").Find(&exams).Error
	return exams, err
}

func (r *ExamRepository) ListByCreator(creatorID uint, page, limit int) ([]model.Exam, int64, error) {
	var exams []model.Exam
	var total int64
	query := r.DB.Model(&model.Exam{}).Where("creator_id = ?", creatorID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&exams).Error
	return exams, total, err
}

func (r *ExamRepository) Update(exam *model.Exam) error {
	return r.DB.Save(exam).Error
}

func (r *ExamRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exam_id = ?", id).Delete(&model.ExamQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exam_id = ?", id).Delete(&model.CourseExam{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Exam{}, "id = ?", id).Error
	})
}

func (r *ExamRepository) CreateQuestion(q *model.ExamQuestion) error {
	return r.DB.Create(q).Error
}

func (r *ExamRepository) UpdateQuestion(q *model.ExamQuestion) error {
	return r.DB.Save(q).Error
}

func (r *ExamRepository) DeleteQuestion(id string) error {
	return r.DB.Delete(&model.ExamQuestion{}, "id = ?", id).Error
}

func (r *ExamRepository) ListQuestions(examID string) ([]model.ExamQuestion, error) {
	var qs []model.ExamQuestion
	err := r.DB.Where("exam_id = ?", examID).
		Order("`order` asc, created_at asc").Find(&qs).Error
	return qs, err
}
