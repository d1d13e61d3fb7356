package repository

import (
	"academy_backend/internal/model"

	"gorm.io/gorm"
)

type ParticipationRepository struct {
	DB *gorm.DB
}

func NewParticipationRepository(db *gorm.DB) *ParticipationRepository {
	return &ParticipationRepository{DB: db}
}

func (r *ParticipationRepository) Create(p *model.Participation) error {
	return r.DB.Create(p).Error
}

func (r *ParticipationRepository) FindByUserAndCourse(userID, courseID uint) (*model.Participation, error) {
	var p model.Participation
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ParticipationRepository) Update(p *model.Participation) error {
	return r.DB.Save(p).Error
}

func (r *ParticipationRepository) ListByCourse(courseID uint, page, limit int, status string) ([]model.Participation, int64, error) {
	var ps []model.Participation
	var total int64
	query := r.DB.Model(&model.Participation{}).Where("course_id = ?", courseID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("User").Order("created_at desc").Offset(offset).Limit(limit).Find(&ps).Error
	return ps, total, err
}

func (r *ParticipationRepository) ListByUser(userID uint) ([]model.Participation, error) {
	var ps []model.Participation
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&ps).Error
	return ps, err
}
