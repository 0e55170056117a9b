package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"unilink.id/campusclubs/internal/config"
	"unilink.id/campusclubs/internal/handler"
	"unilink.id/campusclubs/internal/middleware"
	"unilink.id/campusclubs/internal/model"
	"unilink.id/campusclubs/internal/repository"
	"unilink.id/campusclubs/internal/service"
	"unilink.id/campusclubs/internal/token"
	"unilink.id/campusclubs/pkg/storage"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	imageStorage, err := storage.New(cfg.StorageDriver, cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	// Search is optional; everything degrades to nil-safe no-ops without it.
	var searchSvc service.SearchService
	if cfg.MeiliSearchHost != "" {
		meiliHost := cfg.MeiliSearchHost
		if !strings.HasPrefix(meiliHost, "http") {
			meiliHost = "http://" + meiliHost + ":7700"
		}
		meiliClient := meilisearch.New(meiliHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
		searchSvc = service.NewMeiliSearchService(meiliClient)
	} else {
		log.Println("MEILISEARCH_HOST not set, search disabled")
	}

	userRepo := repository.NewUserRepository(db)
	clubRepo := repository.NewClubRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	eventRepo := repository.NewEventRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	tokenSvc := token.NewService(cfg.JWTSecret, cfg.JWTTTL)

	authSvc := service.NewAuthService(userRepo, tokenSvc)
	clubSvc := service.NewClubService(clubRepo, membershipRepo, userRepo)
	eventSvc := service.NewEventService(eventRepo, clubRepo, searchSvc)
	notificationSvc := service.NewNotificationService(notificationRepo, redisClient)
	announcementSvc := service.NewAnnouncementService(
		announcementRepo, imageStorage, notificationSvc, searchSvc,
		redisClient, cfg.AnnouncementRateLimit,
	)
	feedbackSvc := service.NewFeedbackService(feedbackRepo, eventRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	clubHandler := handler.NewClubHandler(clubSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	announcementHandler := handler.NewAnnouncementHandler(announcementSvc, cfg.MaxUploadSize)
	feedbackHandler := handler.NewFeedbackHandler(feedbackSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc, redisClient)
	searchHandler := handler.NewSearchHandler(searchSvc)

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadSize

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	if cfg.StorageDriver == "local" {
		router.Static("/uploads", cfg.UploadDir)
	}

	authMiddleware := middleware.NewAuthMiddleware(tokenSvc, userRepo)

	api := router.Group("/api")

	api.GET("/health", handler.Health)

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	api.GET("/clubs", clubHandler.GetAllClubs)
	api.GET("/clubs/:id", clubHandler.GetClub)
	api.GET("/events", eventHandler.GetAllEvents)
	api.GET("/events/:id", eventHandler.GetEvent)
	api.GET("/announcements", announcementHandler.GetAllAnnouncements)
	api.GET("/announcements/club/:clubId", announcementHandler.GetClubAnnouncements)
	api.GET("/announcements/:id", announcementHandler.GetAnnouncement)
	api.GET("/feedback/event/:eventId", feedbackHandler.ByEvent)

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/profile", authHandler.Profile)
		protected.GET("/search", searchHandler.Search)

		// Membership routes
		protected.POST("/clubs/:id/join", clubHandler.Join)
		protected.POST("/clubs/:id/leave", clubHandler.Leave)
		protected.GET("/clubs/my/memberships", clubHandler.MyMemberships)

		// Event registration routes
		protected.POST("/events/:id/register", eventHandler.Register)
		protected.POST("/events/:id/unregister", eventHandler.Unregister)

		// Notification routes
		protected.GET("/notifications", notificationHandler.List)
		protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		protected.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)
		protected.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)
		protected.GET("/notifications/ws", notificationHandler.Stream)

		// Student routes
		student := protected.Group("")
		student.Use(authMiddleware.RequireRoles(model.RoleStudent))
		{
			student.POST("/feedback", feedbackHandler.Submit)
			student.PUT("/feedback/:id", feedbackHandler.Update)
			student.GET("/feedback/my", feedbackHandler.Mine)
		}

		// Club head routes
		clubhead := protected.Group("")
		clubhead.Use(authMiddleware.RequireRoles(model.RoleClubHead))
		{
			clubhead.POST("/announcements", announcementHandler.CreateAnnouncement)
			clubhead.PUT("/announcements/:id", announcementHandler.UpdateAnnouncement)
			clubhead.POST("/clubs/:id/events", eventHandler.CreateEvent)
		}

		// Delete is shared: creators and admins, enforced in the service.
		headOrAdmin := protected.Group("")
		headOrAdmin.Use(authMiddleware.RequireRoles(model.RoleClubHead, model.RoleAdmin))
		{
			headOrAdmin.DELETE("/announcements/:id", announcementHandler.DeleteAnnouncement)
			headOrAdmin.PUT("/events/:id", eventHandler.UpdateEvent)
			headOrAdmin.DELETE("/events/:id", eventHandler.DeleteEvent)
		}

		// Admin routes
		admin := protected.Group("")
		admin.Use(authMiddleware.RequireRoles(model.RoleAdmin))
		{
			admin.PUT("/announcements/:id/approve", announcementHandler.Approve)
			admin.PUT("/announcements/:id/reject", announcementHandler.Reject)
			admin.POST("/clubs", clubHandler.CreateClub)
			admin.PUT("/clubs/:id", clubHandler.UpdateClub)
			admin.DELETE("/clubs/:id", clubHandler.DeleteClub)
		}
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}, nil
}

// Run serves until the context is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
