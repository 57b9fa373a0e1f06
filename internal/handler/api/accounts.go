package api

import (
	"log/slog"
	"net/http"

	"github.com/hazelbrook/saffron/internal/domain"
	"github.com/hazelbrook/saffron/internal/handler"
	"github.com/hazelbrook/saffron/internal/service"
)

// AccountHandler handles registration, login, profiles, distributor
// applications and notifications.
type AccountHandler struct {
	users  service.UserService
	logger *slog.Logger
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(users service.UserService, logger *slog.Logger) *AccountHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountHandler{
		users:  users,
		logger: logger,
	}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// Register handles POST /api/v1/accounts/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	account, profile, err := h.users.Register(r.Context(), service.RegisterParams{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusCreated, map[string]any{
		"account": toAccountResponse(account),
		"profile": toProfileResponse(profile),
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/accounts/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	account, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusOK, map[string]any{"account": toAccountResponse(account)})
}

// Get handles GET /api/v1/accounts/{id}
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	account, err := h.users.GetAccount(r.Context(), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusOK, toAccountResponse(account))
}

// GetProfile handles GET /api/v1/accounts/{id}/profile
func (h *AccountHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	profile, err := h.users.GetProfile(r.Context(), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusOK, toProfileResponse(profile))
}

type updateProfileRequest struct {
	Phone              *string `json:"phone"`
	CompanyName        *string `json:"company_name"`
	ShippingAddress    *string `json:"shipping_address"`
	ShippingCity       *string `json:"shipping_city"`
	ShippingRegion     *string `json:"shipping_region"`
	ShippingPostalCode *string `json:"shipping_postal_code"`
	ShippingCountry    *string `json:"shipping_country"`
}

// UpdateProfile handles PATCH /api/v1/accounts/{id}/profile
// Absent fields are left unchanged.
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req updateProfileRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	profile, err := h.users.UpdateProfile(r.Context(), id, domain.ProfileUpdate{
		Phone:              req.Phone,
		CompanyName:        req.CompanyName,
		ShippingAddress:    req.ShippingAddress,
		ShippingCity:       req.ShippingCity,
		ShippingRegion:     req.ShippingRegion,
		ShippingPostalCode: req.ShippingPostalCode,
		ShippingCountry:    req.ShippingCountry,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusOK, toProfileResponse(profile))
}

type applyDistributorRequest struct {
	CompanyName string `json:"company_name"`
	TaxID       string `json:"tax_id"`
	Message     string `json:"message"`
}

// ApplyDistributor handles POST /api/v1/accounts/{id}/distributor-applications
func (h *AccountHandler) ApplyDistributor(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req applyDistributorRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	application, err := h.users.ApplyForDistributor(r.Context(), service.ApplyDistributorParams{
		AccountID:   id,
		CompanyName: req.CompanyName,
		TaxID:       req.TaxID,
		Message:     req.Message,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusCreated, toApplicationResponse(application))
}

// ListPendingApplications handles GET /api/v1/distributor-applications
func (h *AccountHandler) ListPendingApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.users.ListPendingApplications(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	resp := make([]applicationResponse, len(applications))
	for i := range applications {
		resp[i] = toApplicationResponse(&applications[i])
	}
	handler.WriteJSON(w, http.StatusOK, map[string]any{"applications": resp})
}

type reviewApplicationRequest struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note"`
}

// ReviewApplication handles POST /api/v1/distributor-applications/{id}/review
func (h *AccountHandler) ReviewApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req reviewApplicationRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	application, err := h.users.ReviewApplication(r.Context(), id, req.Approve, req.Note)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusOK, toApplicationResponse(application))
}

// ListNotifications handles GET /api/v1/accounts/{id}/notifications
func (h *AccountHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	notifications, err := h.users.ListNotifications(r.Context(), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	unread, err := h.users.CountUnreadNotifications(r.Context(), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	resp := make([]notificationResponse, len(notifications))
	for i, n := range notifications {
		resp[i] = toNotificationResponse(n)
	}
	handler.WriteJSON(w, http.StatusOK, map[string]any{
		"notifications": resp,
		"unread_count":  unread,
	})
}

// MarkNotificationRead handles POST /api/v1/accounts/{id}/notifications/{notification_id}/read
func (h *AccountHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	notificationID, err := pathUUID(r, "notification_id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.users.MarkNotificationRead(r.Context(), accountID, notificationID); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/v1/accounts/{id}/notifications/read-all
func (h *AccountHandler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.users.MarkAllNotificationsRead(r.Context(), id); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
