package repositories

import (
	"context"

	"github.com/nickksoares/drivetube/models"

	"gorm.io/gorm"
)

type GormFavoriteRepository struct {
	db *gorm.DB
}

func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

func (r *GormFavoriteRepository) ListVideosByUser(_ context.Context, tx *gorm.DB, userID uint) ([]models.Video, error) {
	var videos []models.Video
	err := useTx(r.db, tx).Model(&models.Video{}).
		Joins("INNER JOIN favorites ON favorites.video_id = videos.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&videos).Error
	return videos, err
}

func (r *GormFavoriteRepository) Exists(_ context.Context, tx *gorm.DB, userID uint, videoID uint) (bool, error) {
	var count int64
	err := useTx(r.db, tx).Model(&models.Favorite{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).Count(&count).Error
	return count > 0, err
}

func (r *GormFavoriteRepository) Create(_ context.Context, tx *gorm.DB, favorite *models.Favorite) error {
	return useTx(r.db, tx).Create(favorite).Error
}

func (r *GormFavoriteRepository) Delete(_ context.Context, tx *gorm.DB, userID uint, videoID uint) (int64, error) {
	result := useTx(r.db, tx).Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&models.Favorite{})
	return result.RowsAffected, result.Error
}
