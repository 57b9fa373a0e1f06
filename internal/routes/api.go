package routes

import (
	"github.com/hazelbrook/saffron/internal/router"
)

// RegisterAPIRoutes registers the JSON API under /api/v1.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	// Catalog
	r.Get("/api/v1/products", deps.ProductHandler.List)
	r.Post("/api/v1/products", deps.ProductHandler.Create)
	r.Get("/api/v1/products/low-stock", deps.ProductHandler.LowStock)
	r.Get("/api/v1/products/{id}", deps.ProductHandler.Get)
	r.Patch("/api/v1/products/{id}", deps.ProductHandler.Update)
	r.Post("/api/v1/products/{id}/stock", deps.ProductHandler.AddStock)
	r.Get("/api/v1/products/{id}/reviews", deps.ProductHandler.ListReviews)
	r.Post("/api/v1/products/{id}/reviews", deps.ProductHandler.CreateReview)

	r.Get("/api/v1/categories", deps.ProductHandler.ListCategories)
	r.Post("/api/v1/categories", deps.ProductHandler.CreateCategory)
	r.Get("/api/v1/categories/{id}/products", deps.ProductHandler.ListByCategory)

	// Orders
	r.Get("/api/v1/orders", deps.OrderHandler.List)
	r.Post("/api/v1/orders", deps.OrderHandler.Create)
	r.Get("/api/v1/orders/statistics", deps.OrderHandler.Statistics)
	r.Get("/api/v1/orders/{id}", deps.OrderHandler.Get)
	r.Patch("/api/v1/orders/{id}/status", deps.OrderHandler.UpdateStatus)
	r.Post("/api/v1/orders/{id}/payments", deps.OrderHandler.RecordPayment)

	// Accounts
	r.Get("/api/v1/accounts/{id}", deps.AccountHandler.Get)
	r.Get("/api/v1/accounts/{id}/profile", deps.AccountHandler.GetProfile)
	r.Patch("/api/v1/accounts/{id}/profile", deps.AccountHandler.UpdateProfile)
	r.Post("/api/v1/accounts/{id}/distributor-applications", deps.AccountHandler.ApplyDistributor)
	r.Get("/api/v1/accounts/{id}/notifications", deps.AccountHandler.ListNotifications)
	r.Post("/api/v1/accounts/{id}/notifications/read-all", deps.AccountHandler.MarkAllNotificationsRead)
	r.Post("/api/v1/accounts/{id}/notifications/{notification_id}/read", deps.AccountHandler.MarkNotificationRead)

	// Distributor applications (staff)
	r.Get("/api/v1/distributor-applications", deps.AccountHandler.ListPendingApplications)
	r.Post("/api/v1/distributor-applications/{id}/review", deps.AccountHandler.ReviewApplication)

	// Analytics
	r.Get("/api/v1/analytics/dashboard", deps.AnalyticsHandler.Dashboard)
	r.Post("/api/v1/analytics/rollups", deps.AnalyticsHandler.Rollup)
	r.Get("/api/v1/analytics/sales", deps.AnalyticsHandler.Sales)
	r.Get("/api/v1/analytics/alerts", deps.AnalyticsHandler.ListAlerts)
	r.Post("/api/v1/analytics/inventory-sweep", deps.AnalyticsHandler.SweepInventory)

	// Shipping
	r.Get("/api/v1/shipping-methods", deps.ShippingHandler.List)
}

// RegisterAuthRoutes registers the credential endpoints. These are kept
// separate so the caller can attach a stricter rate limiter to them.
func RegisterAuthRoutes(r *router.Router, deps APIDeps) {
	r.Post("/api/v1/accounts/register", deps.AccountHandler.Register)
	r.Post("/api/v1/accounts/login", deps.AccountHandler.Login)
}
