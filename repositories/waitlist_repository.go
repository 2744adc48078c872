package repositories

import (
	"context"

	"github.com/nickksoares/drivetube/models"

	"gorm.io/gorm"
)

type GormWaitlistRepository struct {
	db *gorm.DB
}

func NewGormWaitlistRepository(db *gorm.DB) *GormWaitlistRepository {
	return &GormWaitlistRepository{db: db}
}

func (r *GormWaitlistRepository) GetByEmail(_ context.Context, tx *gorm.DB, email string) (models.WaitlistEntry, error) {
	var entry models.WaitlistEntry
	err := useTx(r.db, tx).Where("email = ?", email).First(&entry).Error
	return entry, err
}

func (r *GormWaitlistRepository) GetByID(_ context.Context, tx *gorm.DB, entryID uint) (models.WaitlistEntry, error) {
	var entry models.WaitlistEntry
	err := useTx(r.db, tx).First(&entry, entryID).Error
	return entry, err
}

func (r *GormWaitlistRepository) ListAll(_ context.Context, tx *gorm.DB, offset int, limit int) ([]models.WaitlistEntry, error) {
	var entries []models.WaitlistEntry
	err := useTx(r.db, tx).Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *GormWaitlistRepository) CountAll(_ context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	err := useTx(r.db, tx).Model(&models.WaitlistEntry{}).Count(&count).Error
	return count, err
}

func (r *GormWaitlistRepository) ListPendingIDs(_ context.Context, tx *gorm.DB) ([]uint, error) {
	var ids []uint
	err := useTx(r.db, tx).Model(&models.WaitlistEntry{}).
		Where("status = ?", models.WaitlistStatusPending).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *GormWaitlistRepository) CountApprovedByUser(_ context.Context, tx *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := useTx(r.db, tx).Model(&models.WaitlistEntry{}).
		Where("user_id = ? AND status = ?", userID, models.WaitlistStatusApproved).
		Count(&count).Error
	return count, err
}

func (r *GormWaitlistRepository) Create(_ context.Context, tx *gorm.DB, entry *models.WaitlistEntry) error {
	return useTx(r.db, tx).Create(entry).Error
}

func (r *GormWaitlistRepository) UpdateByID(_ context.Context, tx *gorm.DB, entryID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.WaitlistEntry{}).Where("id = ?", entryID).Updates(updates).Error
}
