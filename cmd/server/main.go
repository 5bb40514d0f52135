package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"contentshare/internal/auth"
	"contentshare/internal/cache"
	"contentshare/internal/config"
	"contentshare/internal/db"
	"contentshare/internal/handler"
	"contentshare/internal/model"
	"contentshare/internal/repository"
	"contentshare/internal/router"
	"contentshare/internal/service"
	"contentshare/internal/storage"
)

// @title Content Sharing API
// @version 1.0
// @description Content sharing API with registration, bearer-token authentication, media uploads, favorites, and ratings.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token returned by /login.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Rating{},
			&model.Favorite{},
			&model.Content{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Content{},
		&model.Favorite{},
		&model.Rating{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	contentRepo := repository.NewContentRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)
	ratingRepo := repository.NewRatingRepository(gormDB)

	// Initialize media storage
	var files storage.FileStorage
	switch cfg.StorageBackend {
	case config.StorageMinio:
		files, err = storage.NewMinioStorage(context.Background(), storage.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			log.Fatalf("minio storage init: %v", err)
		}
	default:
		files, err = storage.NewLocalStorage(cfg.UploadsDir)
		if err != nil {
			log.Fatalf("local storage init: %v", err)
		}
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessions := auth.NewSessionStore()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, sessions)
	userService := service.NewUserService(userRepo)
	contentService := service.NewContentService(contentRepo, files, cacheClient)
	favoriteService := service.NewFavoriteService(contentRepo, favoriteRepo)
	ratingService := service.NewRatingService(contentRepo, ratingRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	contentHandler := handler.NewContentHandler(contentService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	ratingHandler := handler.NewRatingHandler(ratingService)

	// Register routes
	router.Register(
		e,
		sessions,
		authHandler,
		userHandler,
		contentHandler,
		favoriteHandler,
		ratingHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
