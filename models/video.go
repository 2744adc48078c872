package models

import (
	"time"

	"gorm.io/gorm"
)

type Video struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	DriveID      string         `gorm:"type:varchar(100);not null;index" json:"drive_id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Description  string         `gorm:"type:text" json:"description"`
	Folder       string         `gorm:"type:varchar(255)" json:"folder"`
	ThumbnailURL string         `gorm:"type:varchar(1000)" json:"thumbnail_url"`
	Duration     int            `gorm:"default:0" json:"duration"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
