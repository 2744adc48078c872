package models

import "time"

// SavedFolder remembers every Drive folder a user has browsed. Rows are only
// removed at the user's request.
type SavedFolder struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_user_drive_folder" json:"user_id"`
	DriveFolderID  string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_user_drive_folder" json:"drive_folder_id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	ThumbnailURL   string    `gorm:"type:varchar(1000)" json:"thumbnail_url"`
	VideoCount     int       `gorm:"default:0" json:"video_count"`
	LastAccessedAt time.Time `gorm:"index" json:"last_accessed_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
