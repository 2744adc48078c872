package models

import (
	"time"

	"gorm.io/gorm"
)

type Playlist struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// PlaylistVideo positions are kept contiguous starting at 1; removals
// renumber the remainder.
type PlaylistVideo struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PlaylistID uint      `gorm:"not null;uniqueIndex:idx_playlist_video" json:"playlist_id"`
	VideoID    uint      `gorm:"not null;uniqueIndex:idx_playlist_video" json:"video_id"`
	Position   int       `gorm:"not null" json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}
