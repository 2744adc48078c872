package models

import "time"

type Favorite struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_video" json:"user_id"`
	VideoID   uint      `gorm:"not null;uniqueIndex:idx_user_video" json:"video_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
