package service

import (
	"github.com/hazelbrook/saffron/internal/domain"
)

// Lookup errors - use domain.ENOTFOUND
var (
	ErrOrderNotFound          = domain.Errorf(domain.ENOTFOUND, "", "Order not found")
	ErrProductNotFound        = domain.Errorf(domain.ENOTFOUND, "", "Product not found")
	ErrCategoryNotFound       = domain.Errorf(domain.ENOTFOUND, "", "Category not found")
	ErrPaymentNotFound        = domain.Errorf(domain.ENOTFOUND, "", "Payment not found")
	ErrAccountNotFound        = domain.Errorf(domain.ENOTFOUND, "", "Account not found")
	ErrProfileNotFound        = domain.Errorf(domain.ENOTFOUND, "", "Profile not found")
	ErrApplicationNotFound    = domain.Errorf(domain.ENOTFOUND, "", "Distributor application not found")
	ErrNotificationNotFound   = domain.Errorf(domain.ENOTFOUND, "", "Notification not found")
	ErrShippingMethodNotFound = domain.Errorf(domain.ENOTFOUND, "", "Shipping method not found")
)

// Validation errors - use domain.EINVALID
var (
	ErrEmptyCart       = domain.Errorf(domain.EINVALID, "", "Order must contain at least one item")
	ErrInvalidQuantity = domain.Errorf(domain.EINVALID, "", "Quantity must be greater than 0")
	ErrInvalidRating   = domain.Errorf(domain.EINVALID, "", "Rating must be between 1 and 5")
)

// Conflict errors - use domain.ECONFLICT
var (
	ErrEmailTaken          = domain.Errorf(domain.ECONFLICT, "", "An account with this email already exists")
	ErrDuplicateReview     = domain.Errorf(domain.ECONFLICT, "", "You have already reviewed this product")
	ErrApplicationPending  = domain.Errorf(domain.ECONFLICT, "", "A distributor application is already pending")
	ErrApplicationReviewed = domain.Errorf(domain.ECONFLICT, "", "Application has already been reviewed")
)

// Auth errors
var (
	ErrInvalidCredentials = domain.Errorf(domain.EUNAUTHORIZED, "", "Invalid email or password")
)
