package repositories

import (
	"context"
	"time"

	"github.com/nickksoares/drivetube/drive"
	"github.com/nickksoares/drivetube/models"

	"gorm.io/gorm"
)

type TxManager interface {
	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type UserRepository interface {
	CountByEmail(ctx context.Context, email string, excludeID uint) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (models.User, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID uint) (models.User, error)
	UpdateByID(ctx context.Context, tx *gorm.DB, userID uint, updates map[string]interface{}) error
	SoftDeleteByID(ctx context.Context, tx *gorm.DB, userID uint) error
}

type VideoRepository interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint, offset int, limit int) ([]models.Video, error)
	CountByUser(ctx context.Context, tx *gorm.DB, userID uint) (int64, error)
	GetByID(ctx context.Context, tx *gorm.DB, videoID uint) (models.Video, error)
	Create(ctx context.Context, tx *gorm.DB, video *models.Video) error
	UpdateByID(ctx context.Context, tx *gorm.DB, videoID uint, updates map[string]interface{}) error
	SoftDeleteByID(ctx context.Context, tx *gorm.DB, videoID uint) error
}

// PlaylistVideoItem is a video row joined with its playlist position.
type PlaylistVideoItem struct {
	models.Video
	Position int `json:"position"`
}

type PlaylistRepository interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]models.Playlist, error)
	GetByIDAndUser(ctx context.Context, tx *gorm.DB, playlistID uint, userID uint) (models.Playlist, error)
	Create(ctx context.Context, tx *gorm.DB, playlist *models.Playlist) error
	UpdateByID(ctx context.Context, tx *gorm.DB, playlistID uint, updates map[string]interface{}) error
	SoftDeleteByID(ctx context.Context, tx *gorm.DB, playlistID uint) error

	ListVideos(ctx context.Context, tx *gorm.DB, playlistID uint) ([]PlaylistVideoItem, error)
	ListEntries(ctx context.Context, tx *gorm.DB, playlistID uint) ([]models.PlaylistVideo, error)
	HasVideo(ctx context.Context, tx *gorm.DB, playlistID uint, videoID uint) (bool, error)
	MaxPosition(ctx context.Context, tx *gorm.DB, playlistID uint) (int, error)
	AddVideo(ctx context.Context, tx *gorm.DB, entry *models.PlaylistVideo) error
	RemoveVideo(ctx context.Context, tx *gorm.DB, playlistID uint, videoID uint) (int64, error)
	SetPosition(ctx context.Context, tx *gorm.DB, playlistID uint, videoID uint, position int) error
}

type FavoriteRepository interface {
	ListVideosByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]models.Video, error)
	Exists(ctx context.Context, tx *gorm.DB, userID uint, videoID uint) (bool, error)
	Create(ctx context.Context, tx *gorm.DB, favorite *models.Favorite) error
	Delete(ctx context.Context, tx *gorm.DB, userID uint, videoID uint) (int64, error)
}

type PlanRepository interface {
	ListActive(ctx context.Context, tx *gorm.DB) ([]models.Plan, error)
	GetByID(ctx context.Context, tx *gorm.DB, planID uint) (models.Plan, error)
	CountByName(ctx context.Context, tx *gorm.DB, name string, excludeID uint) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, plan *models.Plan) error
	UpdateByID(ctx context.Context, tx *gorm.DB, planID uint, updates map[string]interface{}) error
}

type SubscriptionRepository interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) (models.Subscription, error)
	GetByUserIDWithDetails(ctx context.Context, tx *gorm.DB, userID uint, paymentLimit int) (models.Subscription, error)
	GetByID(ctx context.Context, tx *gorm.DB, subscriptionID uint) (models.Subscription, error)
	Create(ctx context.Context, tx *gorm.DB, subscription *models.Subscription) error
	UpdateByID(ctx context.Context, tx *gorm.DB, subscriptionID uint, updates map[string]interface{}) error
	ListActiveEndedBefore(ctx context.Context, tx *gorm.DB, now time.Time) ([]models.Subscription, error)
}

type PaymentRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, paymentID uint) (models.Payment, error)
	Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error
	UpdateByID(ctx context.Context, tx *gorm.DB, paymentID uint, updates map[string]interface{}) error
	DeleteExpiredPending(ctx context.Context, tx *gorm.DB, now time.Time) (int64, error)
}

type WaitlistRepository interface {
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (models.WaitlistEntry, error)
	GetByID(ctx context.Context, tx *gorm.DB, entryID uint) (models.WaitlistEntry, error)
	ListAll(ctx context.Context, tx *gorm.DB, offset int, limit int) ([]models.WaitlistEntry, error)
	CountAll(ctx context.Context, tx *gorm.DB) (int64, error)
	ListPendingIDs(ctx context.Context, tx *gorm.DB) ([]uint, error)
	CountApprovedByUser(ctx context.Context, tx *gorm.DB, userID uint) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, entry *models.WaitlistEntry) error
	UpdateByID(ctx context.Context, tx *gorm.DB, entryID uint, updates map[string]interface{}) error
}

type SavedFolderRepository interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]models.SavedFolder, error)
	GetByUserAndFolder(ctx context.Context, tx *gorm.DB, userID uint, driveFolderID string) (models.SavedFolder, error)
	Create(ctx context.Context, tx *gorm.DB, folder *models.SavedFolder) error
	UpdateByID(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error
	DeleteByUserAndFolder(ctx context.Context, tx *gorm.DB, userID uint, driveFolderID string) (int64, error)
}

// CachedStructure is the single cache slot for a user's folder tree.
type CachedStructure struct {
	FolderID  string        `json:"folder_id"`
	FetchedAt int64         `json:"fetched_at"`
	Root      *drive.Folder `json:"root"`
}

// StructureCacheRepository holds one folder-tree snapshot per user plus the
// walk generation counter used to discard stale fetches.
type StructureCacheRepository interface {
	Get(ctx context.Context, userID uint) (*CachedStructure, error)
	Put(ctx context.Context, userID uint, entry *CachedStructure, ttl time.Duration) error
	Clear(ctx context.Context, userID uint) error
	BumpGeneration(ctx context.Context, userID uint) (int64, error)
	Generation(ctx context.Context, userID uint) (int64, error)
}

// ExpansionRepository stores which folder nodes a user keeps expanded.
type ExpansionRepository interface {
	Contains(ctx context.Context, userID uint, folderID string) (bool, error)
	Add(ctx context.Context, userID uint, folderID string) error
	Remove(ctx context.Context, userID uint, folderID string) error
	Members(ctx context.Context, userID uint) ([]string, error)
	Clear(ctx context.Context, userID uint) error
}

// GoogleTokenRepository stores the short-lived Google access token captured at
// login so the library endpoints can call the Drive API on the user's behalf.
type GoogleTokenRepository interface {
	Save(ctx context.Context, userID uint, accessToken string, ttl time.Duration) error
	Get(ctx context.Context, userID uint) (string, error)
	Delete(ctx context.Context, userID uint) error
}

type Container struct {
	TxManager      TxManager
	Users          UserRepository
	Videos         VideoRepository
	Playlists      PlaylistRepository
	Favorites      FavoriteRepository
	Plans          PlanRepository
	Subscriptions  SubscriptionRepository
	Payments       PaymentRepository
	Waitlist       WaitlistRepository
	SavedFolders   SavedFolderRepository
	StructureCache StructureCacheRepository
	Expansion      ExpansionRepository
	GoogleTokens   GoogleTokenRepository
}
