package container

import (
	"fmt"

	"github.com/gdugdh24/lifestyle-connect/internal/config"
	"github.com/gdugdh24/lifestyle-connect/internal/delivery/http"
	"github.com/gdugdh24/lifestyle-connect/internal/delivery/http/handler"
	"github.com/gdugdh24/lifestyle-connect/internal/delivery/http/middleware"
	"github.com/gdugdh24/lifestyle-connect/internal/infrastructure/database"
	"github.com/gdugdh24/lifestyle-connect/internal/infrastructure/payment"
	"github.com/gdugdh24/lifestyle-connect/internal/infrastructure/server"
	"github.com/gdugdh24/lifestyle-connect/internal/repository/postgres"
	"github.com/gdugdh24/lifestyle-connect/internal/repository/redisstore"
	"github.com/gdugdh24/lifestyle-connect/internal/usecase/auth"
	"github.com/gdugdh24/lifestyle-connect/internal/usecase/community"
	"github.com/gdugdh24/lifestyle-connect/internal/usecase/feed"
	"github.com/gdugdh24/lifestyle-connect/internal/usecase/profile"
	"github.com/gdugdh24/lifestyle-connect/internal/usecase/swipe"
	"github.com/gdugdh24/lifestyle-connect/internal/usecase/upgrade"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Logger *zap.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, log *zap.Logger) (*Container, error) {
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := database.Migrate(db, cfg.Database.MigrationsPath, log); err != nil {
		db.Close()
		return nil, err
	}

	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := handler.RegisterValidators(); err != nil {
		db.Close()
		redisClient.Close()
		return nil, err
	}

	// Initialize repositories
	profileRepo := postgres.NewProfileRepository(db)
	swipeRepo := postgres.NewSwipeRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	postRepo := postgres.NewPostRepository(db)
	poolCache := redisstore.NewPoolCache(redisClient)
	notifier := redisstore.NewPostNotifier(redisClient, log.Named("notifier"))

	payments := payment.NewSimulator(cfg.Payment.SimulatedDelay, log.Named("payment"))

	// Initialize use cases
	tokenUseCase := auth.NewTokenUseCase(cfg.JWT.AccessSecret, cfg.JWT.TokenTTL())

	profileUseCase := profile.NewProfileUseCase(
		profileRepo,
		poolCache,
		log.Named("profile"),
	)

	feedUseCase := feed.NewFeedUseCase(
		profileRepo,
		poolCache,
		cfg.Feed.PoolLimit,
		cfg.Feed.SessionTTL,
		log.Named("feed"),
	)

	upgradeUseCase := upgrade.NewUpgradeUseCase(
		profileRepo,
		payments,
		log.Named("upgrade"),
	)

	swipeUseCase := swipe.NewSwipeUseCase(
		swipeRepo,
		matchRepo,
		profileRepo,
		log.Named("swipe"),
	)

	communityUseCase := community.NewCommunityUseCase(
		postRepo,
		notifier,
		log.Named("community"),
	)

	// Initialize router
	router := http.NewRouter(
		handler.NewAuthHandler(tokenUseCase, profileUseCase),
		handler.NewProfileHandler(profileUseCase),
		handler.NewFeedHandler(feedUseCase),
		handler.NewUpgradeHandler(upgradeUseCase),
		handler.NewSwipeHandler(swipeUseCase),
		handler.NewCommunityHandler(communityUseCase),
		handler.NewAdminHandler(profileUseCase),
		middleware.NewAuthMiddleware(tokenUseCase, cfg.Admin.IsAdmin),
		log.Named("http"),
		!cfg.Server.IsProduction(),
	)

	srv := server.NewServer(&cfg.Server, router.Setup(), log)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Logger: log,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("failed to close redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
