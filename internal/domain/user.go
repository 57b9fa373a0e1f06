package domain

import (
	"time"

	"github.com/google/uuid"
)

// CustomerKind determines which pricing a customer sees and which order
// kinds they may place.
type CustomerKind string

const (
	CustomerKindRetail    CustomerKind = "retail"
	CustomerKindWholesale CustomerKind = "wholesale"
)

// Account is a login identity. Profile data lives separately so the two
// can be created together but evolve independently.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	IsStaff      bool
	CreatedAt    time.Time
}

// FullName returns the account holder's display name.
func (a *Account) FullName() string {
	if a.FirstName != "" && a.LastName != "" {
		return a.FirstName + " " + a.LastName
	}
	if a.FirstName != "" {
		return a.FirstName
	}
	return a.LastName
}

// Profile holds customer-facing details for an account. Registration creates
// the account and its profile together in one step.
type Profile struct {
	ID                 uuid.UUID
	AccountID          uuid.UUID
	Kind               CustomerKind
	Phone              string
	CompanyName        string
	ShippingAddress    string
	ShippingCity       string
	ShippingRegion     string
	ShippingPostalCode string
	ShippingCountry    string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ProfileUpdate enumerates the mutable profile fields.
type ProfileUpdate struct {
	Phone              *string
	CompanyName        *string
	ShippingAddress    *string
	ShippingCity       *string
	ShippingRegion     *string
	ShippingPostalCode *string
	ShippingCountry    *string
}

// ApplicationStatus is the review state of a distributor application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// DistributorApplication is a customer's request for wholesale access.
// Approval promotes the applicant's profile to the wholesale kind.
type DistributorApplication struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	CompanyName string
	TaxID       string
	Message     string
	Status      ApplicationStatus
	ReviewNote  string
	ReviewedAt  *time.Time
	CreatedAt   time.Time
}

// NotificationKind classifies in-app notifications.
type NotificationKind string

const (
	NotificationOrderUpdate NotificationKind = "order_update"
	NotificationPromotion   NotificationKind = "promotion"
	NotificationSystem      NotificationKind = "system"
)

// Notification is an in-app message for an account.
type Notification struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Kind      NotificationKind
	Title     string
	Body      string
	Read      bool
	CreatedAt time.Time
}

// Account-related domain errors.
var (
	ErrAccountNotFound      = &Error{Code: ENOTFOUND, Message: "Account not found"}
	ErrProfileNotFound      = &Error{Code: ENOTFOUND, Message: "Profile not found"}
	ErrEmailTaken           = &Error{Code: ECONFLICT, Message: "An account with this email already exists"}
	ErrInvalidCredentials   = &Error{Code: EUNAUTHORIZED, Message: "Invalid email or password"}
	ErrApplicationNotFound  = &Error{Code: ENOTFOUND, Message: "Distributor application not found"}
	ErrApplicationReviewed  = &Error{Code: ECONFLICT, Message: "Distributor application already reviewed"}
	ErrNotificationNotFound = &Error{Code: ENOTFOUND, Message: "Notification not found"}
)
