package repository

import (
	"academy_backend/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	DB *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{DB: db}
}

func (r *VideoRepository) Create(v *model.Video) error {
	return r.DB.Create(v).Error
}

func (r *VideoRepository) FindByID(id uint) (*model.Video, error) {
	var v model.Video
	err := r.DB.First(&v, id).Error
	return &v, err
}

func (r *VideoRepository) Update(v *model.Video) error {
	return r.DB.Save(v).Error
}

func (r *VideoRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Video{}, id).Error
}

func (r *VideoRepository) ListByOwner(ownerID uint, page, limit int) ([]model.Video, int64, error) {
	var vs []model.Video
	var total int64
	query := r.DB.Model(&model.Video{}).Where("owner_id = ?", ownerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&vs).Error
	return vs, total, err
}
