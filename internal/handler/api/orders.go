package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/hazelbrook/saffron/internal/domain"
	"github.com/hazelbrook/saffron/internal/handler"
	"github.com/hazelbrook/saffron/internal/service"
)

// OrderHandler handles order and payment routes.
type OrderHandler struct {
	orders service.OrderService
	logger *slog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders service.OrderService, logger *slog.Logger) *OrderHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderHandler{
		orders: orders,
		logger: logger,
	}
}

type createOrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type createOrderRequest struct {
	AccountID        string                   `json:"account_id"`
	Kind             string                   `json:"kind"`
	Items            []createOrderItemRequest `json:"items"`
	ShippingMethodID string                   `json:"shipping_method_id"`

	ShippingName       string `json:"shipping_name"`
	ShippingAddress    string `json:"shipping_address"`
	ShippingCity       string `json:"shipping_city"`
	ShippingRegion     string `json:"shipping_region"`
	ShippingPostalCode string `json:"shipping_postal_code"`
	ShippingCountry    string `json:"shipping_country"`
}

// Create handles POST /api/v1/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		handler.ErrorResponse(w, r, domain.Errorf(domain.EINVALID, "", "account_id is not a valid UUID"))
		return
	}

	params := service.CreateOrderParams{
		AccountID:          accountID,
		Kind:               domain.OrderKind(req.Kind),
		ShippingName:       req.ShippingName,
		ShippingAddress:    req.ShippingAddress,
		ShippingCity:       req.ShippingCity,
		ShippingRegion:     req.ShippingRegion,
		ShippingPostalCode: req.ShippingPostalCode,
		ShippingCountry:    req.ShippingCountry,
	}
	if req.ShippingMethodID != "" {
		id, err := uuid.Parse(req.ShippingMethodID)
		if err != nil {
			handler.ErrorResponse(w, r, domain.Errorf(domain.EINVALID, "", "shipping_method_id is not a valid UUID"))
			return
		}
		params.ShippingMethodID = id
	}
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			handler.ErrorResponse(w, r, domain.Errorf(domain.EINVALID, "", "product_id is not a valid UUID"))
			return
		}
		params.Items = append(params.Items, domain.CartItem{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orders.CreateOrder(r.Context(), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusCreated, toOrderResponse(order))
}

// Get handles GET /api/v1/orders/{id}
// The path value may be a UUID or an order number.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")

	var order *domain.Order
	var err error
	if id, parseErr := uuid.Parse(raw); parseErr == nil {
		order, err = h.orders.GetOrder(r.Context(), id)
	} else {
		order, err = h.orders.GetOrderByNumber(r.Context(), raw)
	}
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusOK, toOrderResponse(order))
}

// List handles GET /api/v1/orders
// Pass account_id to scope the listing to one customer.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("account_id"); raw != "" {
		accountID, err := uuid.Parse(raw)
		if err != nil {
			handler.ErrorResponse(w, r, domain.Errorf(domain.EINVALID, "", "account_id is not a valid UUID"))
			return
		}
		orders, err := h.orders.ListOrdersByAccount(r.Context(), accountID)
		if err != nil {
			handler.ErrorResponse(w, r, err)
			return
		}
		h.writeOrderList(w, orders)
		return
	}

	limit, err := handler.QueryInt(r, "limit", 50)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	offset, err := handler.QueryInt(r, "offset", 0)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	orders, err := h.orders.ListOrders(r.Context(), int32(limit), int32(offset))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	h.writeOrderList(w, orders)
}

func (h *OrderHandler) writeOrderList(w http.ResponseWriter, orders []domain.Order) {
	resp := make([]orderResponse, len(orders))
	for i := range orders {
		resp[i] = toOrderResponse(&orders[i])
	}
	handler.WriteJSON(w, http.StatusOK, map[string]any{"orders": resp})
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// UpdateStatus handles PATCH /api/v1/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req updateStatusRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), id, domain.OrderStatusUpdate{
		Status: domain.OrderStatus(req.Status),
		Note:   req.Note,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusOK, toOrderResponse(order))
}

type recordPaymentRequest struct {
	Amount         string `json:"amount"`
	Method         string `json:"method"`
	TransactionRef string `json:"transaction_ref"`
	Status         string `json:"status"`
}

// RecordPayment handles POST /api/v1/orders/{id}/payments
func (h *OrderHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req recordPaymentRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	amount, err := parsePrice("amount", req.Amount)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	payment, err := h.orders.RecordPayment(r.Context(), service.RecordPaymentParams{
		OrderID:        id,
		Amount:         amount,
		Method:         req.Method,
		TransactionRef: req.TransactionRef,
		Status:         domain.PaymentRecordStatus(req.Status),
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusCreated, toPaymentResponse(*payment))
}

// Statistics handles GET /api/v1/orders/statistics?from=...&to=...
func (h *OrderHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	stats, err := h.orders.Statistics(r.Context(), from, to)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusOK, toStatisticsResponse(*stats))
}
