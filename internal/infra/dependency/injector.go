// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Felipaof/My-Fluxo-Finance/config"
	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
	"github.com/Felipaof/My-Fluxo-Finance/internal/application/usecase/auth"
	"github.com/Felipaof/My-Fluxo-Finance/internal/application/usecase/category"
	"github.com/Felipaof/My-Fluxo-Finance/internal/application/usecase/goal"
	"github.com/Felipaof/My-Fluxo-Finance/internal/application/usecase/report"
	"github.com/Felipaof/My-Fluxo-Finance/internal/application/usecase/transaction"
	"github.com/Felipaof/My-Fluxo-Finance/internal/infra/server/router"
	"github.com/Felipaof/My-Fluxo-Finance/internal/integration/adapters"
	"github.com/Felipaof/My-Fluxo-Finance/internal/integration/entrypoint/controller"
	"github.com/Felipaof/My-Fluxo-Finance/internal/integration/entrypoint/dto"
	"github.com/Felipaof/My-Fluxo-Finance/internal/integration/entrypoint/middleware"
	"github.com/Felipaof/My-Fluxo-Finance/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config           *config.Config
	DB               *gorm.DB
	Router           *router.Router
	SeedCategories   *category.SeedSystemCategoriesUseCase
	LoginRateLimiter *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil clock means the system clock.
func NewInjector(cfg *config.Config, db *gorm.DB, reportCache adapter.ReportCache, clock adapter.Clock) (*Injector, error) {
	if clock == nil {
		clock = adapters.NewSystemClock()
	}

	if err := dto.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	reportRepo := persistence.NewReportRepository(db)
	uow := persistence.NewUnitOfWork(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.JWT.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	currentUserUseCase := auth.NewGetCurrentUserUseCase(userRepo)

	// Create category use cases
	seedCategoriesUseCase := category.NewSeedSystemCategoriesUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, reportCache)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, reportCache)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo, categoryRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, reportCache, clock)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, reportCache, clock)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, reportCache)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, clock)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo, clock)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, reportCache, clock)
	settleGoalUseCase := goal.NewSettleGoalUseCase(goalRepo, uow, reportCache, clock)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, uow, reportCache, clock)
	toggleGoalUseCase := goal.NewToggleGoalUseCase(settleGoalUseCase)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, reportCache)

	// Create report use cases
	financialSummaryUseCase := report.NewGetFinancialSummaryUseCase(reportRepo, transactionRepo, reportCache, clock)
	goalSummaryUseCase := report.NewGetGoalSummaryUseCase(goalRepo, reportCache, clock)
	categorySummaryUseCase := report.NewGetCategorySummaryUseCase(reportRepo, reportCache, clock)
	exportDataUseCase := report.NewExportDataUseCase(transactionRepo, goalRepo, clock)

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
		currentUserUseCase,
		cfg.Server.IsProduction(),
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		getGoalUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		toggleGoalUseCase,
		deleteGoalUseCase,
	)

	reportController := controller.NewReportController(
		financialSummaryUseCase,
		goalSummaryUseCase,
		categorySummaryUseCase,
		exportDataUseCase,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter(cfg)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		goalController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:           cfg,
		DB:               db,
		Router:           r,
		SeedCategories:   seedCategoriesUseCase,
		LoginRateLimiter: loginRateLimiter,
	}, nil
}
