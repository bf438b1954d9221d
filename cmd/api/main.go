package main

import (
	"context"
	"fmt"

	"tubehub/internal/api/handler"
	"tubehub/internal/api/middleware"
	"tubehub/internal/api/router"
	"tubehub/internal/config"
	"tubehub/internal/infra/database"
	infraES "tubehub/internal/infra/elasticsearch"
	infraKafka "tubehub/internal/infra/kafka"
	infraMinio "tubehub/internal/infra/minio"
	infraRedis "tubehub/internal/infra/redis"
	"tubehub/internal/model"
	"tubehub/internal/repository"
	"tubehub/internal/service"
	"tubehub/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// 自动迁移数据库表
	if err := database.AutoMigrate(
		&model.User{},
		&model.WatchHistory{},
		&model.Video{},
		&model.Comment{},
		&model.Like{},
		&model.Subscription{},
		&model.Tweet{},
		&model.Playlist{},
		&model.PlaylistVideo{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 初始化Redis
	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	// 初始化MinIO
	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	// 初始化Kafka生产者（媒体清理补偿队列）
	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Fatal("Failed to init kafka producer", zap.Error(err))
	}
	defer infraKafka.CloseProducer()

	// 初始化 Elasticsearch（可选，失败则搜索降级到 DB）
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
	} else {
		defer infraES.Close()
		if err := infraES.EnsureVideosIndex(context.Background()); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	watchHistoryRepo := repository.NewWatchHistoryRepository(db)

	searchService := service.NewSearchService(videoRepo)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, subscriptionRepo, watchHistoryRepo)
	videoService := service.NewVideoService(videoRepo, commentRepo, likeRepo, playlistRepo, watchHistoryRepo, searchService)
	commentService := service.NewCommentService(commentRepo, videoRepo, likeRepo)
	likeService := service.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo)
	playlistService := service.NewPlaylistService(playlistRepo, videoRepo, userRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo)
	tweetService := service.NewTweetService(tweetRepo, userRepo, likeRepo)
	dashboardService := service.NewDashboardService(videoRepo, subscriptionRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	videoHandler := handler.NewVideoHandler(videoService)
	commentHandler := handler.NewCommentHandler(commentService)
	likeHandler := handler.NewLikeHandler(likeService)
	playlistHandler := handler.NewPlaylistHandler(playlistService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	tweetHandler := handler.NewTweetHandler(tweetService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	searchHandler := handler.NewSearchHandler(searchService)

	// 注册业务路由
	router.Setup(r,
		authHandler, userHandler, videoHandler, commentHandler, likeHandler,
		playlistHandler, subscriptionHandler, tweetHandler, dashboardHandler,
		searchHandler,
	)

	// 启动HTTP服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
