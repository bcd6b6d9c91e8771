package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/noid254/qaribu-api/internal/application/service"
	"github.com/noid254/qaribu-api/internal/config"
	"github.com/noid254/qaribu-api/internal/infrastructure/database"
	"github.com/noid254/qaribu-api/internal/infrastructure/repository"
	"github.com/noid254/qaribu-api/internal/presentation/http/handler"
	"github.com/noid254/qaribu-api/internal/presentation/http/routes"
	"github.com/noid254/qaribu-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewBusinessProfileRepository(db)
	draftRepo := repository.NewDraftRepository(db)
	draftItemRepo := repository.NewDraftItemRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	docItemRepo := repository.NewDocumentItemRepository(db)
	premiseRepo := repository.NewPremiseRepository(db)
	tenantRepo := repository.NewDirectoryTenantRepository(db)
	visitDraftRepo := repository.NewVisitDraftRepository(db)
	visitRequestRepo := repository.NewVisitRequestRepository(db)
	listingRepo := repository.NewListingRepository(db)
	gigRepo := repository.NewGigRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	profileService := service.NewProfileService(profileRepo)
	documentService := service.NewDocumentService(
		draftRepo,
		draftItemRepo,
		documentRepo,
		docItemRepo,
		profileRepo,
		cfg.Share.PublicBaseURL,
		cfg.Share.QRSize,
	)
	visitService := service.NewVisitService(visitDraftRepo, visitRequestRepo, premiseRepo, tenantRepo)
	directoryService := service.NewDirectoryService(premiseRepo, tenantRepo)
	listingService := service.NewListingService(listingRepo)
	gigService := service.NewGigService(gigRepo)
	orderService := service.NewOrderService(orderRepo, orderItemRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Profile:   handler.NewProfileHandler(profileService),
		Document:  handler.NewDocumentHandler(documentService),
		Visit:     handler.NewVisitHandler(visitService),
		Directory: handler.NewDirectoryHandler(directoryService),
		Listing:   handler.NewListingHandler(listingService),
		Gig:       handler.NewGigHandler(gigService),
		Order:     handler.NewOrderHandler(orderService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
