package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"billing-backend/internal/auth"
	"billing-backend/internal/cache"
	"billing-backend/internal/config"
	"billing-backend/internal/database"
	"billing-backend/internal/handlers"
	"billing-backend/internal/health"
	h "billing-backend/internal/http"
	"billing-backend/internal/middleware"
	"billing-backend/internal/monitoring"
	"billing-backend/internal/repositories"
	"billing-backend/internal/services"
	"billing-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	pool, err := database.Connect(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()
	log.Printf("Connected to database %s@%s:%d", cfg.Database.Name, cfg.Database.Host, cfg.Database.Port)

	// Redis is optional; without it login falls back to bcrypt and the
	// dashboard hits Postgres on every request.
	if err := cache.Init(cfg.Redis); err != nil {
		log.Printf("[Redis] Cache unavailable: %v", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS)
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	err = migrator.RunMigrations(ctx)
	cancel()
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	healthChecker := health.NewHealthChecker(pool)

	hostCollector := monitoring.NewHostCollector(30 * time.Second)
	hostCollector.Start()
	defer hostCollector.Stop()

	jwtManager := auth.NewJWTManager(cfg)

	userRepo := repositories.NewUserRepository(pool)
	clientRepo := repositories.NewClientRepository(pool)
	itemRepo := repositories.NewItemRepository(pool)
	invoiceRepo := repositories.NewInvoiceRepository(pool)

	userService := services.NewUserService(userRepo, jwtManager)
	totpService := services.NewTOTPService(userRepo)
	clientService := services.NewClientService(clientRepo, invoiceRepo)
	itemService := services.NewItemService(itemRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, itemRepo, clientRepo, cfg)
	dashboardService := services.NewDashboardService(clientRepo, itemRepo, invoiceRepo)
	pdfService := services.NewPDFService()

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	err = userService.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password)
	cancel()
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	authHandler := handlers.NewAuthHandler(userService, totpService)
	userHandler := handlers.NewUserHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)
	itemHandler := handlers.NewItemHandler(itemService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, pdfService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	companyHandler := handlers.NewCompanyHandler(cfg)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		authHandler,
		userHandler,
		clientHandler,
		itemHandler,
		invoiceHandler,
		dashboardHandler,
		companyHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			middleware.RequestLogging(
				corsMiddleware(router))))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
