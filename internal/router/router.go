package router

import (
	"log"

	"github.com/connectly-app/backend/internal/handlers"
	"github.com/connectly-app/backend/internal/middleware"
	"github.com/connectly-app/backend/internal/models"
	"github.com/connectly-app/backend/internal/notifications"
	"github.com/connectly-app/backend/internal/repositories"
	"github.com/connectly-app/backend/pkg/cache"
	"github.com/connectly-app/backend/pkg/config"
	"github.com/connectly-app/backend/pkg/metrics"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(metrics.Middleware())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cacheClient *cache.Client, cfg *config.Config) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Bookmark{},
		&models.Notification{},
		&models.Author{},
		&models.Book{},
		&models.Library{},
		&models.Librarian{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize notifier and repositories ---
	notifier := notifications.New(cacheClient)

	userRepo := repositories.NewPostgresUserRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db, notifier)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db, notifier)
	likeRepo := repositories.NewPostgresLikeRepository(db, notifier)
	bookmarkRepo := repositories.NewPostgresBookmarkRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db, cacheClient)
	catalogRepo := repositories.NewPostgresCatalogRepository(db)

	// --- Unprotected routes ---
	authGroup := e.Group("/api/accounts")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	public := e.Group("/api")
	publicCatalog := e.Group("/api/catalog")

	// --- Protected routes (require bearer token) ---
	auth := middleware.TokenAuthMiddleware(cfg.JWTSecret)
	api := e.Group("/api", auth)
	accounts := e.Group("/api/accounts", auth)
	librarianCatalog := e.Group("/api/catalog", auth, middleware.RequireRole(userRepo, models.RoleLibrarian, models.RoleAdmin))
	adminCatalog := e.Group("/api/catalog", auth, middleware.RequireRole(userRepo, models.RoleAdmin))

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo, followRepo)
	userHandler.RegisterProfileRoutes(accounts)
	log.Println("User profile routes configured.")

	// Follow routes
	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	followHandler.RegisterFollowRoutes(accounts)
	log.Println("Follow routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo, userRepo)
	postHandler.RegisterPublicPostRoutes(public)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Feed routes
	feedHandler := handlers.NewFeedHandler(postRepo, userRepo, followRepo, likeRepo, bookmarkRepo)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterPublicCommentRoutes(public)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Bookmark routes
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkRepo, postRepo)
	bookmarkHandler.RegisterBookmarkRoutes(api)
	log.Println("Bookmark routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo, userRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	// Catalog demo routes
	catalogHandler := handlers.NewCatalogHandler(catalogRepo)
	catalogHandler.RegisterPublicCatalogRoutes(publicCatalog)
	catalogHandler.RegisterLibrarianRoutes(librarianCatalog)
	catalogHandler.RegisterAdminRoutes(adminCatalog)
	log.Println("Catalog routes configured.")

	log.Println("All routes configured.")
}
