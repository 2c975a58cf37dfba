package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/retail/backend/internal/application/catalog"
	ledgerapp "github.com/retail/backend/internal/application/ledger"
	partnerapp "github.com/retail/backend/internal/application/partner"
	pricingapp "github.com/retail/backend/internal/application/pricing"
	promotionapp "github.com/retail/backend/internal/application/promotion"
	salesapp "github.com/retail/backend/internal/application/sales"
	"github.com/retail/backend/internal/infrastructure/config"
	"github.com/retail/backend/internal/infrastructure/logger"
	"github.com/retail/backend/internal/infrastructure/persistence"
	"github.com/retail/backend/internal/interfaces/http/handler"
	"github.com/retail/backend/internal/interfaces/http/middleware"
	"github.com/retail/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting retail backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithGormLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	priceRepo := persistence.NewGormSupplierPriceRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	itemRepo := persistence.NewGormTicketItemRepository(db.DB)
	promotionRepo := persistence.NewGormPromotionRepository(db.DB)
	movementRepo := persistence.NewGormMovementRepository(db.DB)
	stateRepo := persistence.NewGormStateRepository(db.DB)

	// Transaction scopes for the multi-table workflows
	saleScope := persistence.NewGormSaleTransactionScope(db.DB)
	promotionScope := persistence.NewGormPromotionTransactionScope(db.DB)

	// Initialize application services
	productService := catalogapp.NewProductService(productRepo, priceRepo).
		WithLowStockThreshold(cfg.Stock.LowStockThreshold)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	priceService := pricingapp.NewSupplierPriceService(priceRepo, supplierRepo, productRepo)
	saleService := salesapp.NewSaleService(saleRepo, saleScope)
	itemService := salesapp.NewTicketItemService(itemRepo)
	promotionService := promotionapp.NewPromotionService(promotionRepo, promotionScope)
	movementService := ledgerapp.NewMovementService(movementRepo, productRepo)
	stateService := ledgerapp.NewStateService(stateRepo, productRepo)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	priceHandler := handler.NewSupplierPriceHandler(priceService)
	saleHandler := handler.NewSaleHandler(saleService)
	itemHandler := handler.NewTicketItemHandler(itemService)
	promotionHandler := handler.NewPromotionHandler(promotionService)
	movementHandler := handler.NewMovementHandler(movementService)
	stateHandler := handler.NewBusinessStateHandler(stateService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, in order: request ID, panic recovery, request
	// logging, security headers, CORS, body size limit.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Register routes under /api
	router.NewRouter(engine).
		Register(productHandler).
		Register(saleHandler).
		Register(itemHandler).
		Register(supplierHandler).
		Register(priceHandler).
		Register(promotionHandler).
		Register(movementHandler).
		Register(stateHandler).
		Register(systemHandler).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
