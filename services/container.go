package services

import (
	"github.com/nickksoares/drivetube/repositories"
)

// Container wires every service over one repository set. Handlers pull
// services from a package-level instance installed at startup.
type Container struct {
	Auth          AuthService
	Videos        VideoService
	Playlists     PlaylistService
	Favorites     FavoriteService
	Plans         PlanService
	Subscriptions SubscriptionService
	Waitlist      WaitlistService
	Access        AccessService
	Library       LibraryService
	Cleanup       CleanupService
}

func NewContainer(repos repositories.Container) *Container {
	return &Container{
		Auth:          NewAuthService(repos.Users, repos.GoogleTokens),
		Videos:        NewVideoService(repos.Videos),
		Playlists:     NewPlaylistService(repos.TxManager, repos.Playlists, repos.Videos),
		Favorites:     NewFavoriteService(repos.Favorites, repos.Videos),
		Plans:         NewPlanService(repos.Plans),
		Subscriptions: NewSubscriptionService(repos.TxManager, repos.Plans, repos.Subscriptions, repos.Payments),
		Waitlist:      NewWaitlistService(repos.Waitlist, repos.Users),
		Access:        NewAccessService(repos.Users, repos.Waitlist, repos.Subscriptions),
		Library:       NewLibraryService(repos.StructureCache, repos.Expansion, repos.GoogleTokens, repos.SavedFolders, nil),
		Cleanup:       NewCleanupService(repos.Subscriptions, repos.Payments),
	}
}
