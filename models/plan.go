package models

import "time"

type Plan struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	// Price in centavos.
	Price    int64  `gorm:"not null" json:"price"`
	Interval string `gorm:"type:varchar(10);not null" json:"interval"`
	// Features is a JSON-encoded list of marketing bullet points.
	Features  string    `gorm:"type:text" json:"features"`
	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	PlanIntervalMonth = "month"
	PlanIntervalYear  = "year"
)
