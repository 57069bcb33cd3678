// Package router registers the API routes on Echo.
package router

import (
	"strings"

	"salesinsight/config"
	"salesinsight/internal/delivery/api/middleware"
	"salesinsight/internal/delivery/api/router/handler"
	"salesinsight/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const defaultUploadLimit = "10M"

// uploadRouteSuffixes lists the multipart routes that use the upload body limit instead of the global one.
//
//nolint:gochecknoglobals
var uploadRouteSuffixes = []string{"/sales/upload", "/train-csv"}

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	AdminHandler    *handler.AdminHandler
	CompanyHandler  *handler.CompanyHandler
	OfferHandler    *handler.OfferHandler
	TrainingHandler *handler.TrainingHandler
	InfoHandler     *handler.InfoHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	adminHandler    *handler.AdminHandler
	companyHandler  *handler.CompanyHandler
	offerHandler    *handler.OfferHandler
	trainingHandler *handler.TrainingHandler
	infoHandler     *handler.InfoHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		adminHandler:    params.AdminHandler,
		companyHandler:  params.CompanyHandler,
		offerHandler:    params.OfferHandler,
		trainingHandler: params.TrainingHandler,
		infoHandler:     params.InfoHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// IsUploadRoute reports whether the matched route accepts file uploads.
func IsUploadRoute(c echo.Context) bool {
	path := c.Path()
	for _, suffix := range uploadRouteSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}

	return false
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.GET("/info", r.infoHandler.Info)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Admin-only management
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/companies", r.adminHandler.CreateCompany)
		adminGroup.GET("/companies", r.adminHandler.ListCompanies)
		adminGroup.POST("/users", r.adminHandler.CreateUser)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PATCH("/users/:id/active", r.adminHandler.SetUserActive)
		adminGroup.GET("/stats", r.adminHandler.Stats)
		adminGroup.GET("/products", r.adminHandler.ListProducts)
		adminGroup.POST("/offers", r.adminHandler.CreateOffer)
		adminGroup.PATCH("/offers/:id/active", r.adminHandler.SetOfferActive)
		adminGroup.POST("/train", r.adminHandler.Train)
	}

	// Tenant self-service; the use cases check that the caller belongs to :companyId
	companyGroup := api.Group("/companies/:companyId")
	companyGroup.Use(r.authMiddleware.Authenticate)
	companyGroup.Use(middleware.RequireRole(entity.RoleCompany))
	{
		uploadLimit := echomiddleware.BodyLimit(r.uploadLimit())

		companyGroup.GET("/products", r.companyHandler.ListProducts)
		companyGroup.PUT("/products/:productId", r.companyHandler.UpdateProduct)
		companyGroup.DELETE("/products/:productId", r.companyHandler.DeleteProduct)
		companyGroup.GET("/sales", r.companyHandler.ListSales)
		companyGroup.POST("/sales", r.companyHandler.AddSale)
		companyGroup.POST("/sales/upload", r.companyHandler.UploadSales, uploadLimit)
		companyGroup.GET("/analytics", r.companyHandler.Analytics)
		companyGroup.GET("/predictions", r.companyHandler.Predictions)
		companyGroup.GET("/feature-importance", r.companyHandler.FeatureImportance)
		companyGroup.POST("/train", r.companyHandler.Train)
		companyGroup.POST("/train-csv", r.companyHandler.TrainCSV, uploadLimit)
	}

	// Readable by every authenticated role
	authenticated := r.authMiddleware.Authenticate
	api.GET("/offers", r.offerHandler.List, authenticated)
	api.GET("/offers/active", r.offerHandler.Active, authenticated)
	api.GET("/training/history", r.trainingHandler.History, authenticated)
	api.GET("/training/current", r.trainingHandler.Current, authenticated)
}

func (r *router) uploadLimit() string {
	if r.config != nil && r.config.Ingest.MaxUploadSize != "" {
		return r.config.Ingest.MaxUploadSize
	}

	return defaultUploadLimit
}
