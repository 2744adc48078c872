package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/nickksoares/drivetube/config"
	"github.com/nickksoares/drivetube/drive"
	"github.com/nickksoares/drivetube/models"
	"github.com/nickksoares/drivetube/repositories"

	"gorm.io/gorm"
)

func testConfig() {
	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireHours: 1},
		Drive: config.DriveConfig{
			MaxDepth:          3,
			StructureCacheTTL: 1800,
			TokenTTL:          3600,
		},
		Billing:    config.BillingConfig{PixExpireHours: 24, SweepInterval: 3600},
		Pagination: config.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100},
	}
}

type fakeTxManager struct{}

func (fakeTxManager) WithTransaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeUserRepo struct {
	usersByID    map[uint]models.User
	usersByEmail map[string]models.User
	nextID       uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		usersByID:    map[uint]models.User{},
		usersByEmail: map[string]models.User{},
		nextID:       1,
	}
}

func (r *fakeUserRepo) put(user models.User) {
	r.usersByID[user.ID] = user
	r.usersByEmail[user.Email] = user
}

func (r *fakeUserRepo) CountByEmail(_ context.Context, email string, excludeID uint) (int64, error) {
	user, ok := r.usersByEmail[email]
	if ok && user.ID != excludeID {
		return 1, nil
	}
	return 0, nil
}

func (r *fakeUserRepo) Create(_ context.Context, _ *gorm.DB, user *models.User) error {
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	}
	r.put(*user)
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, _ *gorm.DB, email string) (models.User, error) {
	user, ok := r.usersByEmail[email]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, _ *gorm.DB, userID uint) (models.User, error) {
	user, ok := r.usersByID[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) UpdateByID(_ context.Context, _ *gorm.DB, userID uint, updates map[string]interface{}) error {
	user, ok := r.usersByID[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if name, ok := updates["name"].(string); ok {
		user.Name = name
	}
	if email, ok := updates["email"].(string); ok {
		delete(r.usersByEmail, user.Email)
		user.Email = email
	}
	if password, ok := updates["password"].(string); ok {
		user.Password = password
	}
	if avatarURL, ok := updates["avatar_url"].(string); ok {
		user.AvatarURL = avatarURL
	}
	r.put(user)
	return nil
}

func (r *fakeUserRepo) SoftDeleteByID(_ context.Context, _ *gorm.DB, userID uint) error {
	user, ok := r.usersByID[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.usersByID, userID)
	delete(r.usersByEmail, user.Email)
	return nil
}

type fakeVideoRepo struct {
	videos map[uint]models.Video
	nextID uint
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{videos: map[uint]models.Video{}, nextID: 1}
}

func (r *fakeVideoRepo) ListByUser(_ context.Context, _ *gorm.DB, userID uint, offset int, limit int) ([]models.Video, error) {
	var out []models.Video
	for _, v := range r.videos {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeVideoRepo) CountByUser(_ context.Context, _ *gorm.DB, userID uint) (int64, error) {
	var count int64
	for _, v := range r.videos {
		if v.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeVideoRepo) GetByID(_ context.Context, _ *gorm.DB, videoID uint) (models.Video, error) {
	v, ok := r.videos[videoID]
	if !ok {
		return models.Video{}, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *fakeVideoRepo) Create(_ context.Context, _ *gorm.DB, video *models.Video) error {
	if video.ID == 0 {
		video.ID = r.nextID
		r.nextID++
	}
	r.videos[video.ID] = *video
	return nil
}

func (r *fakeVideoRepo) UpdateByID(_ context.Context, _ *gorm.DB, videoID uint, updates map[string]interface{}) error {
	v, ok := r.videos[videoID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if name, ok := updates["name"].(string); ok {
		v.Name = name
	}
	r.videos[videoID] = v
	return nil
}

func (r *fakeVideoRepo) SoftDeleteByID(_ context.Context, _ *gorm.DB, videoID uint) error {
	delete(r.videos, videoID)
	return nil
}

type fakePlaylistRepo struct {
	playlists map[uint]models.Playlist
	entries   map[uint][]models.PlaylistVideo
	nextID    uint
}

func newFakePlaylistRepo() *fakePlaylistRepo {
	return &fakePlaylistRepo{
		playlists: map[uint]models.Playlist{},
		entries:   map[uint][]models.PlaylistVideo{},
		nextID:    1,
	}
}

func (r *fakePlaylistRepo) ListByUser(_ context.Context, _ *gorm.DB, userID uint) ([]models.Playlist, error) {
	var out []models.Playlist
	for _, p := range r.playlists {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePlaylistRepo) GetByIDAndUser(_ context.Context, _ *gorm.DB, playlistID uint, userID uint) (models.Playlist, error) {
	p, ok := r.playlists[playlistID]
	if !ok || p.UserID != userID {
		return models.Playlist{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePlaylistRepo) Create(_ context.Context, _ *gorm.DB, playlist *models.Playlist) error {
	if playlist.ID == 0 {
		playlist.ID = r.nextID
		r.nextID++
	}
	r.playlists[playlist.ID] = *playlist
	return nil
}

func (r *fakePlaylistRepo) UpdateByID(_ context.Context, _ *gorm.DB, playlistID uint, updates map[string]interface{}) error {
	p, ok := r.playlists[playlistID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if name, ok := updates["name"].(string); ok {
		p.Name = name
	}
	r.playlists[playlistID] = p
	return nil
}

func (r *fakePlaylistRepo) SoftDeleteByID(_ context.Context, _ *gorm.DB, playlistID uint) error {
	delete(r.playlists, playlistID)
	return nil
}

func (r *fakePlaylistRepo) ListVideos(context.Context, *gorm.DB, uint) ([]repositories.PlaylistVideoItem, error) {
	return nil, errors.New("not implemented")
}

func (r *fakePlaylistRepo) ListEntries(_ context.Context, _ *gorm.DB, playlistID uint) ([]models.PlaylistVideo, error) {
	entries := append([]models.PlaylistVideo(nil), r.entries[playlistID]...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Position < entries[j].Position })
	return entries, nil
}

func (r *fakePlaylistRepo) HasVideo(_ context.Context, _ *gorm.DB, playlistID uint, videoID uint) (bool, error) {
	for _, e := range r.entries[playlistID] {
		if e.VideoID == videoID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePlaylistRepo) MaxPosition(_ context.Context, _ *gorm.DB, playlistID uint) (int, error) {
	max := 0
	for _, e := range r.entries[playlistID] {
		if e.Position > max {
			max = e.Position
		}
	}
	return max, nil
}

func (r *fakePlaylistRepo) AddVideo(_ context.Context, _ *gorm.DB, entry *models.PlaylistVideo) error {
	r.entries[entry.PlaylistID] = append(r.entries[entry.PlaylistID], *entry)
	return nil
}

func (r *fakePlaylistRepo) RemoveVideo(_ context.Context, _ *gorm.DB, playlistID uint, videoID uint) (int64, error) {
	entries := r.entries[playlistID]
	for i, e := range entries {
		if e.VideoID == videoID {
			r.entries[playlistID] = append(entries[:i], entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakePlaylistRepo) SetPosition(_ context.Context, _ *gorm.DB, playlistID uint, videoID uint, position int) error {
	entries := r.entries[playlistID]
	for i, e := range entries {
		if e.VideoID == videoID {
			entries[i].Position = position
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeFavoriteRepo struct {
	videos    *fakeVideoRepo
	favorites map[uint]map[uint]bool
}

func newFakeFavoriteRepo(videos *fakeVideoRepo) *fakeFavoriteRepo {
	return &fakeFavoriteRepo{videos: videos, favorites: map[uint]map[uint]bool{}}
}

func (r *fakeFavoriteRepo) ListVideosByUser(_ context.Context, _ *gorm.DB, userID uint) ([]models.Video, error) {
	var out []models.Video
	for videoID := range r.favorites[userID] {
		if v, ok := r.videos.videos[videoID]; ok {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeFavoriteRepo) Exists(_ context.Context, _ *gorm.DB, userID uint, videoID uint) (bool, error) {
	return r.favorites[userID][videoID], nil
}

func (r *fakeFavoriteRepo) Create(_ context.Context, _ *gorm.DB, favorite *models.Favorite) error {
	if r.favorites[favorite.UserID] == nil {
		r.favorites[favorite.UserID] = map[uint]bool{}
	}
	r.favorites[favorite.UserID][favorite.VideoID] = true
	return nil
}

func (r *fakeFavoriteRepo) Delete(_ context.Context, _ *gorm.DB, userID uint, videoID uint) (int64, error) {
	if r.favorites[userID][videoID] {
		delete(r.favorites[userID], videoID)
		return 1, nil
	}
	return 0, nil
}

type fakePlanRepo struct {
	plans  map[uint]models.Plan
	nextID uint
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[uint]models.Plan{}, nextID: 1}
}

func (r *fakePlanRepo) ListActive(_ context.Context, _ *gorm.DB) ([]models.Plan, error) {
	var out []models.Plan
	for _, p := range r.plans {
		if p.IsActive {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out, nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, _ *gorm.DB, planID uint) (models.Plan, error) {
	p, ok := r.plans[planID]
	if !ok {
		return models.Plan{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePlanRepo) CountByName(_ context.Context, _ *gorm.DB, name string, excludeID uint) (int64, error) {
	for _, p := range r.plans {
		if p.Name == name && p.ID != excludeID {
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakePlanRepo) Create(_ context.Context, _ *gorm.DB, plan *models.Plan) error {
	if plan.ID == 0 {
		plan.ID = r.nextID
		r.nextID++
	}
	r.plans[plan.ID] = *plan
	return nil
}

func (r *fakePlanRepo) UpdateByID(_ context.Context, _ *gorm.DB, planID uint, updates map[string]interface{}) error {
	p, ok := r.plans[planID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if active, ok := updates["is_active"].(bool); ok {
		p.IsActive = active
	}
	if name, ok := updates["name"].(string); ok {
		p.Name = name
	}
	r.plans[planID] = p
	return nil
}

type fakeSubscriptionRepo struct {
	subs   map[uint]models.Subscription
	nextID uint
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: map[uint]models.Subscription{}, nextID: 1}
}

func (r *fakeSubscriptionRepo) GetByUserID(_ context.Context, _ *gorm.DB, userID uint) (models.Subscription, error) {
	for _, s := range r.subs {
		if s.UserID == userID {
			return s, nil
		}
	}
	return models.Subscription{}, gorm.ErrRecordNotFound
}

func (r *fakeSubscriptionRepo) GetByUserIDWithDetails(ctx context.Context, tx *gorm.DB, userID uint, _ int) (models.Subscription, error) {
	return r.GetByUserID(ctx, tx, userID)
}

func (r *fakeSubscriptionRepo) GetByID(_ context.Context, _ *gorm.DB, subscriptionID uint) (models.Subscription, error) {
	s, ok := r.subs[subscriptionID]
	if !ok {
		return models.Subscription{}, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, _ *gorm.DB, subscription *models.Subscription) error {
	if subscription.ID == 0 {
		subscription.ID = r.nextID
		r.nextID++
	}
	r.subs[subscription.ID] = *subscription
	return nil
}

func (r *fakeSubscriptionRepo) UpdateByID(_ context.Context, _ *gorm.DB, subscriptionID uint, updates map[string]interface{}) error {
	s, ok := r.subs[subscriptionID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if status, ok := updates["status"].(string); ok {
		s.Status = status
	}
	if planID, ok := updates["plan_id"].(uint); ok {
		s.PlanID = planID
	}
	if end, ok := updates["end_date"].(time.Time); ok {
		s.EndDate = &end
	}
	if paymentID, ok := updates["last_payment_id"].(uint); ok {
		s.LastPaymentID = &paymentID
	}
	r.subs[subscriptionID] = s
	return nil
}

func (r *fakeSubscriptionRepo) ListActiveEndedBefore(_ context.Context, _ *gorm.DB, now time.Time) ([]models.Subscription, error) {
	var out []models.Subscription
	for _, s := range r.subs {
		if s.Status == models.SubscriptionStatusActive && s.EndDate != nil && s.EndDate.Before(now) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments map[uint]models.Payment
	nextID   uint
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[uint]models.Payment{}, nextID: 1}
}

func (r *fakePaymentRepo) GetByID(_ context.Context, _ *gorm.DB, paymentID uint) (models.Payment, error) {
	p, ok := r.payments[paymentID]
	if !ok {
		return models.Payment{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePaymentRepo) Create(_ context.Context, _ *gorm.DB, payment *models.Payment) error {
	if payment.ID == 0 {
		payment.ID = r.nextID
		r.nextID++
	}
	r.payments[payment.ID] = *payment
	return nil
}

func (r *fakePaymentRepo) UpdateByID(_ context.Context, _ *gorm.DB, paymentID uint, updates map[string]interface{}) error {
	p, ok := r.payments[paymentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if status, ok := updates["status"].(string); ok {
		p.Status = status
	}
	r.payments[paymentID] = p
	return nil
}

func (r *fakePaymentRepo) DeleteExpiredPending(_ context.Context, _ *gorm.DB, now time.Time) (int64, error) {
	var removed int64
	for id, p := range r.payments {
		if p.Status == models.PaymentStatusPending && p.PixExpiresAt != nil && p.PixExpiresAt.Before(now) {
			delete(r.payments, id)
			removed++
		}
	}
	return removed, nil
}

type fakeWaitlistRepo struct {
	entries map[uint]models.WaitlistEntry
	nextID  uint
}

func newFakeWaitlistRepo() *fakeWaitlistRepo {
	return &fakeWaitlistRepo{entries: map[uint]models.WaitlistEntry{}, nextID: 1}
}

func (r *fakeWaitlistRepo) GetByEmail(_ context.Context, _ *gorm.DB, email string) (models.WaitlistEntry, error) {
	for _, e := range r.entries {
		if e.Email == email {
			return e, nil
		}
	}
	return models.WaitlistEntry{}, gorm.ErrRecordNotFound
}

func (r *fakeWaitlistRepo) GetByID(_ context.Context, _ *gorm.DB, entryID uint) (models.WaitlistEntry, error) {
	e, ok := r.entries[entryID]
	if !ok {
		return models.WaitlistEntry{}, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *fakeWaitlistRepo) ListAll(_ context.Context, _ *gorm.DB, offset int, limit int) ([]models.WaitlistEntry, error) {
	var out []models.WaitlistEntry
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeWaitlistRepo) CountAll(_ context.Context, _ *gorm.DB) (int64, error) {
	return int64(len(r.entries)), nil
}

func (r *fakeWaitlistRepo) ListPendingIDs(_ context.Context, _ *gorm.DB) ([]uint, error) {
	var pending []models.WaitlistEntry
	for _, e := range r.entries {
		if e.Status == models.WaitlistStatusPending {
			pending = append(pending, e)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		if pending[i].CreatedAt.Equal(pending[j].CreatedAt) {
			return pending[i].ID < pending[j].ID
		}
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	ids := make([]uint, len(pending))
	for i, e := range pending {
		ids[i] = e.ID
	}
	return ids, nil
}

func (r *fakeWaitlistRepo) CountApprovedByUser(_ context.Context, _ *gorm.DB, userID uint) (int64, error) {
	for _, e := range r.entries {
		if e.Status == models.WaitlistStatusApproved && e.UserID != nil && *e.UserID == userID {
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeWaitlistRepo) Create(_ context.Context, _ *gorm.DB, entry *models.WaitlistEntry) error {
	if entry.ID == 0 {
		entry.ID = r.nextID
		r.nextID++
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	r.entries[entry.ID] = *entry
	return nil
}

func (r *fakeWaitlistRepo) UpdateByID(_ context.Context, _ *gorm.DB, entryID uint, updates map[string]interface{}) error {
	e, ok := r.entries[entryID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if status, ok := updates["status"].(string); ok {
		e.Status = status
	}
	if userID, ok := updates["user_id"].(uint); ok {
		e.UserID = &userID
	}
	r.entries[entryID] = e
	return nil
}

type fakeSavedFolderRepo struct {
	folders map[uint]models.SavedFolder
	nextID  uint
}

func newFakeSavedFolderRepo() *fakeSavedFolderRepo {
	return &fakeSavedFolderRepo{folders: map[uint]models.SavedFolder{}, nextID: 1}
}

func (r *fakeSavedFolderRepo) ListByUser(_ context.Context, _ *gorm.DB, userID uint) ([]models.SavedFolder, error) {
	var out []models.SavedFolder
	for _, f := range r.folders {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastAccessedAt.After(out[j].LastAccessedAt) })
	return out, nil
}

func (r *fakeSavedFolderRepo) GetByUserAndFolder(_ context.Context, _ *gorm.DB, userID uint, driveFolderID string) (models.SavedFolder, error) {
	for _, f := range r.folders {
		if f.UserID == userID && f.DriveFolderID == driveFolderID {
			return f, nil
		}
	}
	return models.SavedFolder{}, gorm.ErrRecordNotFound
}

func (r *fakeSavedFolderRepo) Create(_ context.Context, _ *gorm.DB, folder *models.SavedFolder) error {
	if folder.ID == 0 {
		folder.ID = r.nextID
		r.nextID++
	}
	r.folders[folder.ID] = *folder
	return nil
}

func (r *fakeSavedFolderRepo) UpdateByID(_ context.Context, _ *gorm.DB, id uint, updates map[string]interface{}) error {
	f, ok := r.folders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if name, ok := updates["name"].(string); ok {
		f.Name = name
	}
	if count, ok := updates["video_count"].(int); ok {
		f.VideoCount = count
	}
	if thumb, ok := updates["thumbnail_url"].(string); ok {
		f.ThumbnailURL = thumb
	}
	if at, ok := updates["last_accessed_at"].(time.Time); ok {
		f.LastAccessedAt = at
	}
	r.folders[id] = f
	return nil
}

func (r *fakeSavedFolderRepo) DeleteByUserAndFolder(_ context.Context, _ *gorm.DB, userID uint, driveFolderID string) (int64, error) {
	for id, f := range r.folders {
		if f.UserID == userID && f.DriveFolderID == driveFolderID {
			delete(r.folders, id)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeStructureCache struct {
	entries     map[uint]*repositories.CachedStructure
	generations map[uint]int64
}

func newFakeStructureCache() *fakeStructureCache {
	return &fakeStructureCache{
		entries:     map[uint]*repositories.CachedStructure{},
		generations: map[uint]int64{},
	}
}

func (c *fakeStructureCache) Get(_ context.Context, userID uint) (*repositories.CachedStructure, error) {
	return c.entries[userID], nil
}

func (c *fakeStructureCache) Put(_ context.Context, userID uint, entry *repositories.CachedStructure, _ time.Duration) error {
	c.entries[userID] = entry
	return nil
}

func (c *fakeStructureCache) Clear(_ context.Context, userID uint) error {
	delete(c.entries, userID)
	return nil
}

func (c *fakeStructureCache) BumpGeneration(_ context.Context, userID uint) (int64, error) {
	c.generations[userID]++
	return c.generations[userID], nil
}

func (c *fakeStructureCache) Generation(_ context.Context, userID uint) (int64, error) {
	return c.generations[userID], nil
}

type fakeExpansionRepo struct {
	sets map[uint]map[string]bool
}

func newFakeExpansionRepo() *fakeExpansionRepo {
	return &fakeExpansionRepo{sets: map[uint]map[string]bool{}}
}

func (r *fakeExpansionRepo) Contains(_ context.Context, userID uint, folderID string) (bool, error) {
	return r.sets[userID][folderID], nil
}

func (r *fakeExpansionRepo) Add(_ context.Context, userID uint, folderID string) error {
	if r.sets[userID] == nil {
		r.sets[userID] = map[string]bool{}
	}
	r.sets[userID][folderID] = true
	return nil
}

func (r *fakeExpansionRepo) Remove(_ context.Context, userID uint, folderID string) error {
	delete(r.sets[userID], folderID)
	return nil
}

func (r *fakeExpansionRepo) Members(_ context.Context, userID uint) ([]string, error) {
	var out []string
	for id := range r.sets[userID] {
		out = append(out, id)
	}
	return out, nil
}

func (r *fakeExpansionRepo) Clear(_ context.Context, userID uint) error {
	delete(r.sets, userID)
	return nil
}

type fakeGoogleTokenRepo struct {
	tokens map[uint]string
}

func newFakeGoogleTokenRepo() *fakeGoogleTokenRepo {
	return &fakeGoogleTokenRepo{tokens: map[uint]string{}}
}

func (r *fakeGoogleTokenRepo) Save(_ context.Context, userID uint, accessToken string, _ time.Duration) error {
	r.tokens[userID] = accessToken
	return nil
}

func (r *fakeGoogleTokenRepo) Get(_ context.Context, userID uint) (string, error) {
	return r.tokens[userID], nil
}

func (r *fakeGoogleTokenRepo) Delete(_ context.Context, userID uint) error {
	delete(r.tokens, userID)
	return nil
}

// fakeDriveClient serves canned trees and records how often it was walked.
type fakeDriveClient struct {
	names    map[string]string
	children map[string][]drive.File
	folders  map[string][]string
	mimes    map[string]string
	calls    int
	onList   func()
}

func newFakeDriveClient() *fakeDriveClient {
	return &fakeDriveClient{
		names:    map[string]string{},
		children: map[string][]drive.File{},
		folders:  map[string][]string{},
		mimes:    map[string]string{},
	}
}

func (c *fakeDriveClient) FolderName(_ context.Context, folderID string) (string, error) {
	name, ok := c.names[folderID]
	if !ok {
		return "", &drive.StatusError{StatusCode: 404, Op: "get folder", Err: errors.New("not found")}
	}
	return name, nil
}

func (c *fakeDriveClient) ListChildren(_ context.Context, folderID string) ([]drive.File, []string, error) {
	c.calls++
	if c.onList != nil {
		c.onList()
	}
	return c.children[folderID], c.folders[folderID], nil
}

func (c *fakeDriveClient) FolderMeta(_ context.Context, folderID string) (string, string, string, error) {
	name, ok := c.names[folderID]
	if !ok {
		return "", "", "", &drive.StatusError{StatusCode: 404, Op: "get folder meta", Err: errors.New("not found")}
	}
	mime := c.mimes[folderID]
	if mime == "" {
		mime = "application/vnd.google-apps.folder"
	}
	return folderID, name, mime, nil
}
