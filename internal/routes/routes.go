package routes

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"elaundry/internal/controllers"
	"elaundry/internal/entities"
	"elaundry/internal/listeners"
	"elaundry/internal/livepage"
	"elaundry/internal/orderform"
	"elaundry/internal/repositories"
	"elaundry/internal/services"
	"elaundry/pkg/config"
	"elaundry/pkg/eventbus"
	"elaundry/pkg/scheduler"
	"elaundry/pkg/telegram"
	"elaundry/pkg/validation"
)

// Runtime is what main needs to shut the site down cleanly.
type Runtime struct {
	Sessions *livepage.Manager
	Bus      *eventbus.Bus
	Branches repositories.BranchRepositoryInterface
}

// InitRouter wires repositories, services and controllers and registers every
// route. dbConn and redisClient may be nil.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config, logger *zap.Logger) (*Runtime, error) {
	logger.Info("registering routes")

	// --- repositories ---
	branchRepo, err := repositories.OpenBranchRepository(cfg.Catalog.Source, dbConn, logger)
	if err != nil {
		return nil, fmt.Errorf("branch catalog: %w", err)
	}
	if redisClient != nil {
		branchRepo = repositories.NewCachedBranchRepository(branchRepo, repositories.NewRedisCacheRepository(redisClient), cfg.Catalog.CacheTTL, logger)
	}

	// --- events ---
	bus := eventbus.New(logger)
	var tg telegram.ServiceInterface
	if cfg.Telegram.BotToken != "" {
		tg = telegram.NewService(cfg.Telegram.BotToken, logger)
	}
	listeners.NewOrderListener(tg, cfg.Telegram, logger).Register(bus)

	// --- services ---
	v, ok := e.Validator.(*validation.CustomValidator)
	if !ok {
		v = validation.New()
	}
	formOptions := orderform.Options{
		RequireBranch: cfg.Order.RequireBranch,
		DefaultBranch: entities.BranchID(cfg.Order.DefaultBranch),
	}
	branchService := services.NewBranchService(branchRepo, services.DirectoryOptionsFromConfig(cfg.Map), logger)
	orderService := services.NewOrderService(branchRepo, bus, v, formOptions, scheduler.RealClock, logger)
	profileService := services.NewProfileService(logger)
	contentService, err := services.NewContentService()
	if err != nil {
		return nil, fmt.Errorf("page content: %w", err)
	}
	sessions := livepage.NewManager(branchService, orderService, cfg.Carousel, scheduler.RealClock, logger)

	// --- routers ---
	runPageRouter(e, controllers.NewPageController(branchService, orderService, profileService, contentService, cfg.Map, cfg.Carousel, logger))
	runAssetRouter(e, controllers.NewAssetController(cfg.Server.StaticDir, logger))

	api := e.Group("/api")
	runBranchRouter(api, controllers.NewBranchController(branchService, logger))
	runOrderRouter(e, api, controllers.NewOrderController(branchService, orderService, contentService, logger))
	runLiveRouter(e, controllers.NewWebSocketController(sessions, cfg.Server.AllowedOrigins, logger), controllers.NewHealthController(sessions))

	logger.Info("routes registered", zap.String("catalog", cfg.Catalog.Source), zap.Bool("cache", redisClient != nil))
	return &Runtime{Sessions: sessions, Bus: bus, Branches: branchRepo}, nil
}
