package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"

	"yatube/internal/cache"
	"yatube/internal/config"
	"yatube/internal/database"
	"yatube/internal/handler"
	"yatube/internal/redis"
	"yatube/internal/repository"
	"yatube/internal/service"
	"yatube/internal/storage"
)

func Run() error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Connect to Database
	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	// 3. Connect to Redis
	redisClient, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	// 4. Connect to object storage
	imageStore, err := storage.NewMinIOStore(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create image store: %w", err)
	}

	// 5. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)

	// 6. Initialize Services
	pageCache := cache.NewPageCache(redisClient.Client)
	authService := service.NewAuthService(cfg)
	userService := service.NewUserService(userRepo)
	mediaService := service.NewMediaService(imageStore, cfg.MaxImageSizeMB, cfg.MaxImageDimenPx)
	postService := service.NewPostService(postRepo, groupRepo, commentRepo, imageStore)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	feedService := service.NewFeedService(postRepo, groupRepo, userRepo, followRepo, pageCache, cfg.PageSize, cfg.PageCacheTTL)

	// 7. Initialize Handlers
	authHandler := handler.NewAuthHandler(userService, authService)
	feedHandler := handler.NewFeedHandler(feedService)
	postHandler := handler.NewPostHandler(postService, mediaService)
	commentHandler := handler.NewCommentHandler(commentService)
	followHandler := handler.NewFollowHandler(followService)

	// 8. Setup Router
	router := NewRouter(RouterConfig{
		AuthHandler:    authHandler,
		FeedHandler:    feedHandler,
		PostHandler:    postHandler,
		CommentHandler: commentHandler,
		FollowHandler:  followHandler,
		JWTSecret:      cfg.JWTSecret,
	})

	addr := ":" + cfg.ServerPort
	log.Printf("Starting server on %s", addr)

	return stdhttp.ListenAndServe(addr, router)
}
