package repositories

import (
	"context"
	"time"

	"github.com/nickksoares/drivetube/models"

	"gorm.io/gorm"
)

type GormSubscriptionRepository struct {
	db *gorm.DB
}

func NewGormSubscriptionRepository(db *gorm.DB) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: db}
}

func (r *GormSubscriptionRepository) GetByUserID(_ context.Context, tx *gorm.DB, userID uint) (models.Subscription, error) {
	var sub models.Subscription
	err := useTx(r.db, tx).Where("user_id = ?", userID).First(&sub).Error
	return sub, err
}

func (r *GormSubscriptionRepository) GetByUserIDWithDetails(_ context.Context, tx *gorm.DB, userID uint, paymentLimit int) (models.Subscription, error) {
	var sub models.Subscription
	err := useTx(r.db, tx).
		Preload("Plan").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Limit(paymentLimit)
		}).
		Where("user_id = ?", userID).First(&sub).Error
	return sub, err
}

func (r *GormSubscriptionRepository) GetByID(_ context.Context, tx *gorm.DB, subscriptionID uint) (models.Subscription, error) {
	var sub models.Subscription
	err := useTx(r.db, tx).First(&sub, subscriptionID).Error
	return sub, err
}

func (r *GormSubscriptionRepository) Create(_ context.Context, tx *gorm.DB, subscription *models.Subscription) error {
	return useTx(r.db, tx).Create(subscription).Error
}

func (r *GormSubscriptionRepository) UpdateByID(_ context.Context, tx *gorm.DB, subscriptionID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.Subscription{}).Where("id = ?", subscriptionID).Updates(updates).Error
}

func (r *GormSubscriptionRepository) ListActiveEndedBefore(_ context.Context, tx *gorm.DB, now time.Time) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := useTx(r.db, tx).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", models.SubscriptionStatusActive, now).
		Find(&subs).Error
	return subs, err
}
