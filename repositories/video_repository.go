package repositories

import (
	"context"

	"github.com/nickksoares/drivetube/models"

	"gorm.io/gorm"
)

type GormVideoRepository struct {
	db *gorm.DB
}

func NewGormVideoRepository(db *gorm.DB) *GormVideoRepository {
	return &GormVideoRepository{db: db}
}

func (r *GormVideoRepository) ListByUser(_ context.Context, tx *gorm.DB, userID uint, offset int, limit int) ([]models.Video, error) {
	var videos []models.Video
	err := useTx(r.db, tx).Where("user_id = ?", userID).
		Order("folder ASC, name ASC").
		Offset(offset).Limit(limit).
		Find(&videos).Error
	return videos, err
}

func (r *GormVideoRepository) CountByUser(_ context.Context, tx *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := useTx(r.db, tx).Model(&models.Video{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *GormVideoRepository) GetByID(_ context.Context, tx *gorm.DB, videoID uint) (models.Video, error) {
	var video models.Video
	err := useTx(r.db, tx).First(&video, videoID).Error
	return video, err
}

func (r *GormVideoRepository) Create(_ context.Context, tx *gorm.DB, video *models.Video) error {
	return useTx(r.db, tx).Create(video).Error
}

func (r *GormVideoRepository) UpdateByID(_ context.Context, tx *gorm.DB, videoID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.Video{}).Where("id = ?", videoID).Updates(updates).Error
}

func (r *GormVideoRepository) SoftDeleteByID(_ context.Context, tx *gorm.DB, videoID uint) error {
	return useTx(r.db, tx).Delete(&models.Video{}, videoID).Error
}
