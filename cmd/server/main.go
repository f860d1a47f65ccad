package main

import (
	"fmt"
	"log"
	"time"

	"chayen/internal/config"
	"chayen/internal/handler"
	"chayen/internal/repository/postgres"
	"chayen/internal/router"
	"chayen/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Shop.Timezone)
	if err != nil {
		return fmt.Errorf("invalid shop timezone %q: %w", cfg.Shop.Timezone, err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	productRepo := postgres.NewProductRepo(db)
	toppingRepo := postgres.NewToppingRepo(db)
	staffRepo := postgres.NewStaffRepo(db)
	userRepo := postgres.NewUserRepo(db)
	orderRepo := postgres.NewOrderRepo(db)
	sessionRepo := postgres.NewShopSessionRepo(db)
	reportRepo := postgres.NewReportRepo(db)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	parseSvc := service.NewParseService(productRepo, toppingRepo)
	orderSvc := service.NewOrderService(orderRepo, productRepo, toppingRepo, sessionRepo, loc)
	catalogSvc := service.NewCatalogService(productRepo, toppingRepo)
	staffSvc := service.NewStaffService(staffRepo)
	userSvc := service.NewUserService(userRepo)
	shopSvc := service.NewShopService(sessionRepo, orderRepo)
	reportSvc := service.NewReportService(reportRepo, loc)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	parseH := handler.NewParseHandler(parseSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	staffH := handler.NewStaffHandler(staffSvc)
	userH := handler.NewUserHandler(userSvc)
	shopH := handler.NewShopHandler(shopSvc)
	reportH := handler.NewReportHandler(reportSvc, cfg.Shop.Name)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins,
		authH, parseH, orderH, catalogH, staffH, userH, shopH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
