// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/savings-tracker/backend/config"
	"github.com/savings-tracker/backend/internal/application/usecase/auth"
	"github.com/savings-tracker/backend/internal/application/usecase/dashboard"
	"github.com/savings-tracker/backend/internal/application/usecase/target"
	"github.com/savings-tracker/backend/internal/application/usecase/transaction"
	"github.com/savings-tracker/backend/internal/infra/server/router"
	"github.com/savings-tracker/backend/internal/integration/adapters"
	"github.com/savings-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/savings-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/savings-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	targetRepo := persistence.NewTargetRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	sessionStore := adapters.NewSessionStore(redisClient)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, sessionStore)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create target use cases
	listTargetsUseCase := target.NewListTargetsUseCase(targetRepo)
	createTargetUseCase := target.NewCreateTargetUseCase(targetRepo)
	deleteTargetUseCase := target.NewDeleteTargetUseCase(targetRepo)

	// Create transaction use cases
	recordTransactionUseCase := transaction.NewRecordTransactionUseCase(transactionRepo, targetRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)

	// Create dashboard use cases
	summaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, targetRepo)
	trendsUseCase := dashboard.NewGetMonthlyTrendsUseCase(transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	targetController := controller.NewTargetController(
		listTargetsUseCase,
		createTargetUseCase,
		deleteTargetUseCase,
	)

	transactionController := controller.NewTransactionController(
		recordTransactionUseCase,
		listTransactionsUseCase,
	)

	dashboardController := controller.NewDashboardController(
		summaryUseCase,
		trendsUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		targetController,
		transactionController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
