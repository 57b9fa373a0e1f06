package shipping

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Provider defines the interface for shipping rate lookups.
// Implementations can be backed by the database or by carrier APIs.
type Provider interface {
	// ListMethods returns all shipping options available at checkout.
	ListMethods(ctx context.Context) ([]Method, error)

	// GetMethod returns a single shipping option by ID.
	GetMethod(ctx context.Context, id uuid.UUID) (*Method, error)
}

// Method represents a shipping option offered at checkout.
type Method struct {
	ID            uuid.UUID
	Name          string
	Price         decimal.Decimal
	EstimatedDays int32
}
