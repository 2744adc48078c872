package main

import (
	"context"
	"fmt"
	"log"

	"github.com/nickksoares/drivetube/config"
	"github.com/nickksoares/drivetube/database"
	"github.com/nickksoares/drivetube/handlers"
	"github.com/nickksoares/drivetube/logger"
	"github.com/nickksoares/drivetube/middleware"
	"github.com/nickksoares/drivetube/models"
	"github.com/nickksoares/drivetube/repositories"
	"github.com/nickksoares/drivetube/services"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("starting drivetube service")

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	logger.SetLevel(cfg.Log.Level)

	if err := database.InitMySQL(&cfg.Database); err != nil {
		log.Fatalf("init mysql failed: %v", err)
	}

	database.DB.AutoMigrate(
		&models.User{},
		&models.Video{},
		&models.Playlist{},
		&models.PlaylistVideo{},
		&models.Favorite{},
		&models.Plan{},
		&models.Subscription{},
		&models.Payment{},
		&models.WaitlistEntry{},
		&models.SavedFolder{},
	)
	log.Println("database migration completed")

	if err := database.InitRedis(&cfg.Redis); err != nil {
		log.Fatalf("init redis failed: %v", err)
	}

	repoContainer := repositories.NewGormRepositories(database.DB, database.RedisClient).BuildContainer()
	serviceContainer := services.NewContainer(repoContainer)
	handlers.SetServices(serviceContainer)

	serviceContainer.Cleanup.Start(context.Background())
	log.Println("billing sweep started")

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())
	setupRoutes(r, serviceContainer)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("server listening on http://%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server start failed: %v", err)
	}
}

func setupRoutes(r *gin.Engine, svc *services.Container) {
	api := r.Group("/api")

	api.GET("/health", handlers.HealthCheck)

	auth := api.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
		auth.POST("/google", handlers.GoogleLogin)
	}

	api.GET("/plans", handlers.ListPlans)
	api.GET("/plans/:id", handlers.GetPlan)

	waitlist := api.Group("/waitlist")
	{
		waitlist.POST("/join", handlers.JoinWaitlist)
		waitlist.GET("/status", handlers.WaitlistStatus)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/me", handlers.Me)
		protected.PUT("/users/me", handlers.UpdateMe)
		protected.DELETE("/users/me", handlers.DeleteMe)

		protected.GET("/videos", handlers.ListVideos)
		protected.POST("/videos", handlers.CreateVideo)
		protected.GET("/videos/:id", handlers.GetVideo)
		protected.PUT("/videos/:id", handlers.UpdateVideo)
		protected.DELETE("/videos/:id", handlers.DeleteVideo)

		protected.GET("/playlists", handlers.ListPlaylists)
		protected.POST("/playlists", handlers.CreatePlaylist)
		protected.GET("/playlists/:id", handlers.GetPlaylist)
		protected.PUT("/playlists/:id", handlers.UpdatePlaylist)
		protected.DELETE("/playlists/:id", handlers.DeletePlaylist)
		protected.POST("/playlists/:id/videos", handlers.AddPlaylistVideo)
		protected.PUT("/playlists/:id/videos/reorder", handlers.ReorderPlaylist)
		protected.DELETE("/playlists/:id/videos/:videoId", handlers.RemovePlaylistVideo)

		protected.GET("/favorites", handlers.ListFavorites)
		protected.POST("/favorites/:videoId", handlers.AddFavorite)
		protected.DELETE("/favorites/:videoId", handlers.RemoveFavorite)

		protected.POST("/subscriptions", handlers.CreateSubscription)
		protected.GET("/subscriptions/me", handlers.GetMySubscription)
		protected.PUT("/subscriptions/me", handlers.UpdateMySubscription)
		protected.POST("/subscriptions/me/cancel", handlers.CancelMySubscription)
		protected.POST("/subscriptions/payments/:id/process", handlers.ProcessPayment)
		protected.GET("/subscriptions/check-access", handlers.CheckAccess)

		gated := protected.Group("")
		gated.Use(middleware.AccessGate(svc.Access))
		{
			gated.GET("/videos/:id/embed", handlers.GetVideoEmbed)

			gated.GET("/library/tree", handlers.GetLibraryTree)
			gated.POST("/library/tree/view", handlers.GetLibraryTreeView)
			gated.POST("/library/refresh", handlers.RefreshLibrary)
			gated.POST("/library/cache/clear", handlers.ClearLibraryCache)
			gated.POST("/library/folders/:folderId/toggle", handlers.ToggleLibraryFolder)
			gated.GET("/library/folders", handlers.ListSavedFolders)
			gated.DELETE("/library/folders/:folderId", handlers.DeleteSavedFolder)
			gated.POST("/library/config/folder", handlers.ConfigureLibraryFolder)
		}

		admin := protected.Group("")
		admin.Use(middleware.AdminOnly(svc.Auth))
		{
			admin.GET("/waitlist", handlers.ListWaitlist)
			admin.PUT("/waitlist/:id", handlers.UpdateWaitlistEntry)
			admin.POST("/waitlist/:id/approve", handlers.ApproveWaitlistEntry)
			admin.POST("/waitlist/:id/reject", handlers.RejectWaitlistEntry)

			admin.POST("/plans", handlers.CreatePlan)
			admin.PUT("/plans/:id", handlers.UpdatePlan)
			admin.DELETE("/plans/:id", handlers.DeletePlan)
		}
	}
}
