package shipping

// These constants mirror domain error codes to avoid circular imports.
// The handler layer maps these to HTTP status codes.
const (
	codeInternal = "internal"
	codeNotFound = "not_found"
)

// ShippingError represents a shipping-specific error with a code and message.
// It implements the domain.Error interface pattern for consistent HTTP status mapping.
type ShippingError struct {
	Code    string
	Message string
}

func (e *ShippingError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *ShippingError) ErrorCode() string {
	return e.Code
}

// ErrorMessage returns the user-facing message.
func (e *ShippingError) ErrorMessage() string {
	return e.Message
}

// newShippingError creates a new shipping error.
func newShippingError(code, message string) *ShippingError {
	return &ShippingError{Code: code, Message: message}
}

var (
	// ErrMethodNotFound is returned when a shipping method cannot be found.
	ErrMethodNotFound = newShippingError(codeNotFound, "Shipping method not found")

	// ErrCatalogUnavailable is returned when shipping methods cannot be loaded.
	ErrCatalogUnavailable = newShippingError(codeInternal, "Shipping methods unavailable")
)
