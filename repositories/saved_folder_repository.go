package repositories

import (
	"context"

	"github.com/nickksoares/drivetube/models"

	"gorm.io/gorm"
)

type GormSavedFolderRepository struct {
	db *gorm.DB
}

func NewGormSavedFolderRepository(db *gorm.DB) *GormSavedFolderRepository {
	return &GormSavedFolderRepository{db: db}
}

func (r *GormSavedFolderRepository) ListByUser(_ context.Context, tx *gorm.DB, userID uint) ([]models.SavedFolder, error) {
	var folders []models.SavedFolder
	err := useTx(r.db, tx).Where("user_id = ?", userID).
		Order("last_accessed_at DESC").Find(&folders).Error
	return folders, err
}

func (r *GormSavedFolderRepository) GetByUserAndFolder(_ context.Context, tx *gorm.DB, userID uint, driveFolderID string) (models.SavedFolder, error) {
	var folder models.SavedFolder
	err := useTx(r.db, tx).Where("user_id = ? AND drive_folder_id = ?", userID, driveFolderID).
		First(&folder).Error
	return folder, err
}

func (r *GormSavedFolderRepository) Create(_ context.Context, tx *gorm.DB, folder *models.SavedFolder) error {
	return useTx(r.db, tx).Create(folder).Error
}

func (r *GormSavedFolderRepository) UpdateByID(_ context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.SavedFolder{}).Where("id = ?", id).Updates(updates).Error
}

func (r *GormSavedFolderRepository) DeleteByUserAndFolder(_ context.Context, tx *gorm.DB, userID uint, driveFolderID string) (int64, error) {
	result := useTx(r.db, tx).Where("user_id = ? AND drive_folder_id = ?", userID, driveFolderID).
		Delete(&models.SavedFolder{})
	return result.RowsAffected, result.Error
}
