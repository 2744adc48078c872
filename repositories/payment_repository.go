package repositories

import (
	"context"
	"time"

	"github.com/nickksoares/drivetube/models"

	"gorm.io/gorm"
)

type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) GetByID(_ context.Context, tx *gorm.DB, paymentID uint) (models.Payment, error) {
	var payment models.Payment
	err := useTx(r.db, tx).First(&payment, paymentID).Error
	return payment, err
}

func (r *GormPaymentRepository) Create(_ context.Context, tx *gorm.DB, payment *models.Payment) error {
	return useTx(r.db, tx).Create(payment).Error
}

func (r *GormPaymentRepository) UpdateByID(_ context.Context, tx *gorm.DB, paymentID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.Payment{}).Where("id = ?", paymentID).Updates(updates).Error
}

func (r *GormPaymentRepository) DeleteExpiredPending(_ context.Context, tx *gorm.DB, now time.Time) (int64, error) {
	result := useTx(r.db, tx).
		Where("status = ? AND pix_expires_at IS NOT NULL AND pix_expires_at < ?", models.PaymentStatusPending, now).
		Delete(&models.Payment{})
	return result.RowsAffected, result.Error
}
