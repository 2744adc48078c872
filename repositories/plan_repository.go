package repositories

import (
	"context"

	"github.com/nickksoares/drivetube/models"

	"gorm.io/gorm"
)

type GormPlanRepository struct {
	db *gorm.DB
}

func NewGormPlanRepository(db *gorm.DB) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

func (r *GormPlanRepository) ListActive(_ context.Context, tx *gorm.DB) ([]models.Plan, error) {
	var plans []models.Plan
	err := useTx(r.db, tx).Where("is_active = ?", true).Order("price ASC").Find(&plans).Error
	return plans, err
}

func (r *GormPlanRepository) GetByID(_ context.Context, tx *gorm.DB, planID uint) (models.Plan, error) {
	var plan models.Plan
	err := useTx(r.db, tx).First(&plan, planID).Error
	return plan, err
}

func (r *GormPlanRepository) CountByName(_ context.Context, tx *gorm.DB, name string, excludeID uint) (int64, error) {
	db := useTx(r.db, tx).Model(&models.Plan{}).Where("name = ?", name)
	if excludeID > 0 {
		db = db.Where("id <> ?", excludeID)
	}
	var count int64
	err := db.Count(&count).Error
	return count, err
}

func (r *GormPlanRepository) Create(_ context.Context, tx *gorm.DB, plan *models.Plan) error {
	return useTx(r.db, tx).Create(plan).Error
}

func (r *GormPlanRepository) UpdateByID(_ context.Context, tx *gorm.DB, planID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.Plan{}).Where("id = ?", planID).Updates(updates).Error
}
