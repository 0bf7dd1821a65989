package routes

import (
	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/handler"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every API handler for route registration
type Handlers struct {
	Auth      *handler.AuthHandler
	Farmland  *handler.FarmlandHandler
	Listing   *handler.ListingHandler
	Payment   *handler.PaymentHandler
	Company   *handler.CompanyHandler
	Dashboard *handler.DashboardHandler
	Wallet    *handler.WalletHandler
	Admin     *handler.AdminHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, tokens gateway.TokenIssuer, h Handlers) {
	api := router.Group("/api/v1")

	session := middleware.Auth(tokens)
	farmerOnly := middleware.RequireRoles(entity.RoleFarmer)
	companyOnly := middleware.RequireRoles(entity.RoleCompany)
	adminOnly := middleware.RequireRoles(entity.RoleAdmin)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/google", h.Auth.GoogleAuth)
		auth.POST("/login", h.Auth.Login)

		auth.GET("/me", session, h.Auth.Me)
		auth.PUT("/me", session, h.Auth.UpdateProfile)
		auth.PUT("/me/password", session, h.Auth.ChangePassword)
	}

	farmland := api.Group("/farmland", session, farmerOnly)
	{
		farmland.POST("/create", h.Farmland.Create)
		farmland.GET("", h.Farmland.ListOwned)
		farmland.GET("/my", h.Farmland.ListOwned)
		farmland.GET("/:id", h.Farmland.Get)
	}

	listings := api.Group("/farmer-marketplace-listing", session, farmerOnly)
	{
		listings.POST("", h.Listing.Create)
		listings.GET("/my", h.Listing.ListOwned)
		listings.GET("/:id", h.Listing.Get)
		listings.PUT("/:id", h.Listing.Update)
		listings.DELETE("/:id", h.Listing.Delete)
	}

	// Public marketplace browse carries no session requirement
	api.GET("/marketplace/listings", h.Listing.Browse)

	payment := api.Group("/payment", session, companyOnly)
	{
		payment.POST("/create-order", h.Payment.CreateOrder)
		payment.POST("/verify-payment", h.Payment.VerifyPayment)
	}

	company := api.Group("/company", session, companyOnly)
	{
		company.POST("/documents/upload", h.Company.UploadDocuments)
		company.GET("/transactions", h.Company.Transactions)
	}

	dashboard := api.Group("/dashboard", session)
	{
		dashboard.GET("/farmer", farmerOnly, h.Dashboard.Farmer)
		dashboard.GET("/company", companyOnly, h.Dashboard.Company)
		dashboard.GET("/admin", adminOnly, h.Dashboard.Admin)
	}

	wallet := api.Group("/wallet", session, farmerOnly)
	{
		wallet.GET("", h.Wallet.Statement)
	}

	admin := api.Group("/admin", session, adminOnly)
	{
		admin.POST("/create", h.Admin.CreateAdmin)
		admin.PUT("/users/:id/status", h.Admin.SetUserStatus)
		admin.GET("/farmland/pending", h.Farmland.ListPending)
		admin.PUT("/farmland/:id/review", h.Farmland.Review)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
