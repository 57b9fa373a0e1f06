package routes

import (
	"github.com/hazelbrook/saffron/internal/handler/api"
)

// APIDeps contains the handlers the JSON API routes need.
type APIDeps struct {
	ProductHandler   *api.ProductHandler
	OrderHandler     *api.OrderHandler
	AccountHandler   *api.AccountHandler
	AnalyticsHandler *api.AnalyticsHandler
	ShippingHandler  *api.ShippingHandler
}
