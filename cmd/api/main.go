package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "pharmatrade/api/swagger" // swagger docs
	"pharmatrade/internal/cache"
	"pharmatrade/internal/config"
	"pharmatrade/internal/database"
	"pharmatrade/internal/handler"
	"pharmatrade/internal/logger"
	"pharmatrade/internal/middleware"
	"pharmatrade/internal/model"
	"pharmatrade/internal/normalize"
	"pharmatrade/internal/repository"
	"pharmatrade/internal/service"
	"pharmatrade/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Pharma Trade Intelligence API
// @version         1.0
// @description     Supplier-customer and geographic market-share summaries over declared pharmaceutical export shipments.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		logger.Log.Info("No configs/.env file found or error loading it")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Invalid configuration: %v", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		logger.Log.Fatalf("Failed to open log file: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := database.NewConnection(cfg.DB.DSN())
	if err != nil {
		logger.Log.Fatalf("Database connection failed: %v", err)
	}
	logger.Log.Info("Connected to PostgreSQL successfully.")
	logger.Log.WithField("country_aliases", normalize.CountryAliasCount()).Debug("Normalization tables loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run(ctx)

	// Set up dependencies (Repository -> Service -> Handler)
	shipmentRepo := repository.NewShipmentRepository(db)
	txManager := repository.NewTransactionManager(db)

	summaryService := service.NewSummaryService(
		shipmentRepo,
		cache.New[model.SummaryResult](cfg.Summary.CacheTTL),
		cfg.Summary.MaxRecords,
	)
	shipmentService := service.NewShipmentService(shipmentRepo, txManager, summaryService, wsHub)

	summaryHandler := handler.NewSummaryHandler(summaryService)
	shipmentHandler := handler.NewShipmentHandler(shipmentService)

	// Set up Gin Router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(logger.Log), middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	summaryHandler.RegisterRoutes(router.Group("", middleware.RateLimit(middleware.NewClientLimiter(cfg.Summary.RateRPM))))
	shipmentHandler.RegisterRoutes(router.Group(""))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.WithFields(logrus.Fields{"port": cfg.Port}).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("Graceful shutdown failed")
	}
}
