package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noid254/qaribu-api/internal/config"
	domainRepo "github.com/noid254/qaribu-api/internal/domain/repository"
	"github.com/noid254/qaribu-api/internal/presentation/http/handler"
	"github.com/noid254/qaribu-api/internal/presentation/http/middleware"
	"github.com/noid254/qaribu-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Profile   *handler.ProfileHandler
	Document  *handler.DocumentHandler
	Visit     *handler.VisitHandler
	Directory *handler.DirectoryHandler
	Listing   *handler.ListingHandler
	Gig       *handler.GigHandler
	Order     *handler.OrderHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)
		registerPublicRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

// registerPublicRoutes covers the visitor-facing surface. Check-in sessions
// are opened by people standing at a gate, so they carry no authentication.
func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers) {
	// Premise browsing and tenant directories
	v1.GET("/premises", h.Directory.ListPremises)
	v1.GET("/premises/:id", h.Directory.GetPremise)
	v1.GET("/premises/:id/tenants", h.Directory.ListTenants)

	// Catalogue and gig board browsing
	v1.GET("/listings", h.Listing.List)
	v1.GET("/listings/:id", h.Listing.Get)
	v1.GET("/gigs", h.Gig.List)
	v1.GET("/gigs/:id", h.Gig.Get)

	// Finalized document views (shared by link)
	v1.GET("/documents/:id", h.Document.View)

	// Visitor check-in wizard
	checkIn := v1.Group("/check-in")
	{
		checkIn.POST("", h.Visit.Start)
		checkIn.GET("/:id", h.Visit.Get)
		checkIn.POST("/:id/type", h.Visit.ChooseType)
		checkIn.POST("/:id/host", h.Visit.SelectTenant)
		checkIn.POST("/:id/unit", h.Visit.SetUnit)
		checkIn.POST("/:id/back", h.Visit.Back)
		checkIn.POST("/:id/submit", h.Visit.Submit)
	}

	v1.GET("/visit-requests/:id", h.Visit.GetRequest)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.GET("/me", h.Auth.Me)
	protected.PUT("/me", h.Auth.UpdateMe)
	protected.PUT("/me/password", h.Auth.ChangePassword)

	// Business profile
	protected.GET("/business-profile", h.Profile.Get)
	protected.PUT("/business-profile", h.Profile.Upsert)

	// Documents
	registerDocumentRoutes(protected, h, deps)

	// Premises and directories
	registerDirectoryRoutes(protected, h)

	// Listings
	registerListingRoutes(protected, h)

	// Gigs
	registerGigRoutes(protected, h)

	// Orders
	registerOrderRoutes(protected, h, deps)
}

func registerDocumentRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	drafts := protected.Group("/drafts")
	{
		drafts.GET("", h.Document.ListDrafts)
		drafts.POST("", h.Document.CreateDraft)
		drafts.GET("/:id", h.Document.GetDraft)
		drafts.PUT("/:id/parties", h.Document.UpdateParties)
		drafts.PUT("/:id/charges", h.Document.UpdateCharges)
		drafts.POST("/:id/next", h.Document.NextStep)
		drafts.POST("/:id/back", h.Document.PreviousStep)
		drafts.POST("/:id/items", h.Document.AddItem)
		drafts.DELETE("/:id/items/:itemId", h.Document.RemoveItem)
		drafts.GET("/:id/preview", h.Document.Preview)
		drafts.POST("/:id/sync-issuer", h.Document.SyncIssuer)
		// Finalize uses idempotency middleware to prevent double submission
		drafts.POST("/:id/finalize", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Document.Finalize)
	}

	documents := protected.Group("/my-documents")
	{
		documents.GET("", h.Document.ListDocuments)
		documents.GET("/:id", h.Document.GetDocument)
		documents.PATCH("/:id/payment-status", h.Document.UpdatePaymentStatus)
		documents.POST("/:id/share", h.Document.Share)
		documents.GET("/:id/qr-code", h.Document.QRCode)
	}
}

func registerDirectoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.POST("/premises", h.Directory.CreatePremise)
	protected.POST("/premises/:id/tenants", h.Directory.AddTenant)
	protected.PUT("/tenants/:id", h.Directory.UpdateTenant)
	protected.DELETE("/tenants/:id", h.Directory.RemoveTenant)

	// Visit request management
	protected.GET("/premises/:id/visit-requests", h.Visit.ListRequests)
	protected.PATCH("/visit-requests/:id/status", h.Visit.UpdateRequestStatus)
}

func registerListingRoutes(protected *gin.RouterGroup, h *Handlers) {
	listings := protected.Group("/my-listings")
	{
		listings.POST("", h.Listing.Create)
		listings.PUT("/:id", h.Listing.Update)
		listings.POST("/:id/images", h.Listing.AddImage)
		listings.DELETE("/:id/images/:index", h.Listing.RemoveImage)
		listings.DELETE("/:id", h.Listing.Delete)
	}
}

func registerGigRoutes(protected *gin.RouterGroup, h *Handlers) {
	gigs := protected.Group("/my-gigs")
	{
		gigs.POST("", h.Gig.Create)
		gigs.PUT("/:id", h.Gig.Update)
		gigs.PATCH("/:id/status", h.Gig.UpdateStatus)
		gigs.DELETE("/:id", h.Gig.Delete)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		// Order creation replays on a repeated idempotency key when one is sent
		orders.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PATCH("/:id/status", h.Order.UpdateStatus)
		orders.POST("/:id/share", h.Order.Share)
	}
}
