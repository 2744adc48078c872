package repositories

import (
	"context"

	"github.com/nickksoares/drivetube/models"

	"gorm.io/gorm"
)

type GormPlaylistRepository struct {
	db *gorm.DB
}

func NewGormPlaylistRepository(db *gorm.DB) *GormPlaylistRepository {
	return &GormPlaylistRepository{db: db}
}

func (r *GormPlaylistRepository) ListByUser(_ context.Context, tx *gorm.DB, userID uint) ([]models.Playlist, error) {
	var playlists []models.Playlist
	err := useTx(r.db, tx).Where("user_id = ?", userID).Order("name ASC").Find(&playlists).Error
	return playlists, err
}

func (r *GormPlaylistRepository) GetByIDAndUser(_ context.Context, tx *gorm.DB, playlistID uint, userID uint) (models.Playlist, error) {
	var playlist models.Playlist
	err := useTx(r.db, tx).Where("id = ? AND user_id = ?", playlistID, userID).First(&playlist).Error
	return playlist, err
}

func (r *GormPlaylistRepository) Create(_ context.Context, tx *gorm.DB, playlist *models.Playlist) error {
	return useTx(r.db, tx).Create(playlist).Error
}

func (r *GormPlaylistRepository) UpdateByID(_ context.Context, tx *gorm.DB, playlistID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.Playlist{}).Where("id = ?", playlistID).Updates(updates).Error
}

func (r *GormPlaylistRepository) SoftDeleteByID(_ context.Context, tx *gorm.DB, playlistID uint) error {
	return useTx(r.db, tx).Delete(&models.Playlist{}, playlistID).Error
}

func (r *GormPlaylistRepository) ListVideos(_ context.Context, tx *gorm.DB, playlistID uint) ([]PlaylistVideoItem, error) {
	var items []PlaylistVideoItem
	err := useTx(r.db, tx).Model(&models.Video{}).
		Select("videos.*, playlist_videos.position").
		Joins("INNER JOIN playlist_videos ON playlist_videos.video_id = videos.id").
		Where("playlist_videos.playlist_id = ?", playlistID).
		Order("playlist_videos.position ASC").
		Scan(&items).Error
	return items, err
}

func (r *GormPlaylistRepository) ListEntries(_ context.Context, tx *gorm.DB, playlistID uint) ([]models.PlaylistVideo, error) {
	var entries []models.PlaylistVideo
	err := useTx(r.db, tx).Where("playlist_id = ?", playlistID).
		Order("position ASC").Find(&entries).Error
	return entries, err
}

func (r *GormPlaylistRepository) HasVideo(_ context.Context, tx *gorm.DB, playlistID uint, videoID uint) (bool, error) {
	var count int64
	err := useTx(r.db, tx).Model(&models.PlaylistVideo{}).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).Count(&count).Error
	return count > 0, err
}

func (r *GormPlaylistRepository) MaxPosition(_ context.Context, tx *gorm.DB, playlistID uint) (int, error) {
	var max int
	err := useTx(r.db, tx).Model(&models.PlaylistVideo{}).
		Where("playlist_id = ?", playlistID).
		Select("COALESCE(MAX(position), 0)").Scan(&max).Error
	return max, err
}

func (r *GormPlaylistRepository) AddVideo(_ context.Context, tx *gorm.DB, entry *models.PlaylistVideo) error {
	return useTx(r.db, tx).Create(entry).Error
}

func (r *GormPlaylistRepository) RemoveVideo(_ context.Context, tx *gorm.DB, playlistID uint, videoID uint) (int64, error) {
	result := useTx(r.db, tx).Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&models.PlaylistVideo{})
	return result.RowsAffected, result.Error
}

func (r *GormPlaylistRepository) SetPosition(_ context.Context, tx *gorm.DB, playlistID uint, videoID uint, position int) error {
	return useTx(r.db, tx).Model(&models.PlaylistVideo{}).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Update("position", position).Error
}
