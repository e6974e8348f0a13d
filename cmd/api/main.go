package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"estate-office-saas/internal/client"
	"estate-office-saas/internal/config"
	"estate-office-saas/internal/handler"
	"estate-office-saas/internal/repository"
	"estate-office-saas/internal/server"
	"estate-office-saas/internal/service"

	"github.com/bwmarrin/snowflake"
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func buildLogger(cfg config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg.Log)
	if err != nil {
		log.Fatal("failed to build logger:", err)
	}
	defer logger.Sync()

	node, err := snowflake.NewNode(1)
	if err != nil {
		log.Fatal("failed to init id generator:", err)
	}

	db := client.InitMysqlClient(cfg.DatabaseURL)
	gatewayClient := client.NewGatewayClient(&cfg.Gateway)

	officeRepo := repository.NewOfficeRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	listingRepo := repository.NewListingRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	accessService := service.NewAccessService(assignmentRepo)
	officeService := service.NewOfficeService(db, node, officeRepo, subscriptionRepo, accessService, logger)
	crmService := service.NewCrmService(node, listingRepo, customerRepo, officeService)
	billingService := service.NewBillingService(
		db, gatewayClient, cfg.BaseURL,
		paymentRepo,
		subscriptionRepo,
		logger,
	)

	billingHandler := handler.NewBillingHandler(billingService, officeService, cfg.PanelURL)
	officeHandler := handler.NewOfficeHandler(officeService, crmService)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(billingHandler, officeHandler, cfg.JWT.Secret, adminRepo, logger)

	logger.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
