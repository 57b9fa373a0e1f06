package api

import (
	"log/slog"
	"net/http"

	"github.com/hazelbrook/saffron/internal/handler"
	"github.com/hazelbrook/saffron/internal/shipping"
)

// ShippingHandler handles shipping method routes.
type ShippingHandler struct {
	provider shipping.Provider
	logger   *slog.Logger
}

// NewShippingHandler creates a new shipping handler.
func NewShippingHandler(provider shipping.Provider, logger *slog.Logger) *ShippingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ShippingHandler{
		provider: provider,
		logger:   logger,
	}
}

type shippingMethodResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	EstimatedDays int32  `json:"estimated_days"`
}

// List handles GET /api/v1/shipping-methods
func (h *ShippingHandler) List(w http.ResponseWriter, r *http.Request) {
	methods, err := h.provider.ListMethods(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	resp := make([]shippingMethodResponse, len(methods))
	for i, m := range methods {
		resp[i] = shippingMethodResponse{
			ID:            m.ID.String(),
			Name:          m.Name,
			Price:         m.Price.StringFixed(2),
			EstimatedDays: m.EstimatedDays,
		}
	}
	handler.WriteJSON(w, http.StatusOK, map[string]any{"shipping_methods": resp})
}
