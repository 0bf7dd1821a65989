package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	authUseCase "github.com/agrikarbon/carbon-marketplace/internal/domain/usecase/auth"
	companyUseCase "github.com/agrikarbon/carbon-marketplace/internal/domain/usecase/company"
	dashboardUseCase "github.com/agrikarbon/carbon-marketplace/internal/domain/usecase/dashboard"
	farmlandUseCase "github.com/agrikarbon/carbon-marketplace/internal/domain/usecase/farmland"
	listingUseCase "github.com/agrikarbon/carbon-marketplace/internal/domain/usecase/listing"
	paymentUseCase "github.com/agrikarbon/carbon-marketplace/internal/domain/usecase/payment"
	walletUseCase "github.com/agrikarbon/carbon-marketplace/internal/domain/usecase/wallet"

	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/handler"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/routes"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/credential"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/database"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/database/migration"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/identity"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/logger"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/payment"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/repository"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/storage"
	timeProvider "github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/time"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/token"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}
	if err := dbConfig.Validate(); err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	farmlandRepo := repository.NewFarmlandRepository(dbManager.DB(), appLogger)
	listingRepo := repository.NewListingRepository(dbManager.DB(), appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)
	walletRepo := repository.NewWalletRepository(dbManager.DB(), appLogger)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// External gateways
	hasher := credential.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens, err := token.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to initialize token manager", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	verifier := identity.NewGoogleVerifier(cfg.Google.Audience, appLogger)
	paymentGateway := payment.NewRazorpayGateway(cfg.Payment.KeyID, cfg.Payment.KeySecret, appLogger)
	objectStorage, err := storage.NewCloudinaryStorage(cfg.Storage.CloudinaryURL, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize object storage", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Use cases
	authService := authUseCase.NewService(userRepo, hasher, tokens, verifier, tp, appLogger)
	farmlandService := farmlandUseCase.NewService(farmlandRepo, objectStorage, tp, appLogger)
	listingService := listingUseCase.NewService(listingRepo, farmlandRepo, tp, appLogger)
	paymentService := paymentUseCase.NewService(uow, listingRepo, paymentGateway, cfg.Payment.KeySecret, tp, appLogger)
	companyService := companyUseCase.NewService(userRepo, transactionRepo, objectStorage, tp, appLogger)
	dashboardService := dashboardUseCase.NewService(userRepo, farmlandRepo, listingRepo, transactionRepo, appLogger)
	walletService := walletUseCase.NewService(userRepo, walletRepo, appLogger)

	// Bootstrap admin
	if err := migration.SeedAdmin(context.Background(), authService, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		appLogger.Error("Failed to seed admin account", map[string]any{"error": err.Error()})
	}

	// HTTP layer
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, tokens, routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, appLogger),
		Farmland:  handler.NewFarmlandHandler(farmlandService, appLogger),
		Listing:   handler.NewListingHandler(listingService, appLogger),
		Payment:   handler.NewPaymentHandler(paymentService, appLogger),
		Company:   handler.NewCompanyHandler(companyService, appLogger),
		Dashboard: handler.NewDashboardHandler(dashboardService, appLogger),
		Wallet:    handler.NewWalletHandler(walletService, appLogger),
		Admin:     handler.NewAdminHandler(authService, appLogger),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
}
