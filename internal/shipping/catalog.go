package shipping

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/hazelbrook/saffron/internal/repository"
)

// CatalogProvider serves flat-rate shipping methods stored in the database.
type CatalogProvider struct {
	store repository.Store
}

// NewCatalogProvider creates a database-backed shipping provider.
func NewCatalogProvider(store repository.Store) Provider {
	return &CatalogProvider{store: store}
}

// ListMethods returns all active shipping methods ordered by price.
func (p *CatalogProvider) ListMethods(ctx context.Context) ([]Method, error) {
	rows, err := p.store.ListShippingMethods(ctx)
	if err != nil {
		return nil, ErrCatalogUnavailable
	}

	methods := make([]Method, len(rows))
	for i, row := range rows {
		methods[i] = toMethod(row)
	}
	return methods, nil
}

// GetMethod returns a single shipping method by ID.
func (p *CatalogProvider) GetMethod(ctx context.Context, id uuid.UUID) (*Method, error) {
	row, err := p.store.GetShippingMethod(ctx, pgtype.UUID{Bytes: id, Valid: true})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMethodNotFound
		}
		return nil, ErrCatalogUnavailable
	}

	m := toMethod(row)
	return &m, nil
}

func toMethod(row repository.ShippingMethod) Method {
	price := decimal.Zero
	if row.Price.Valid {
		price = decimal.NewFromBigInt(row.Price.Int, row.Price.Exp)
	}
	return Method{
		ID:            uuid.UUID(row.ID.Bytes),
		Name:          row.Name,
		Price:         price,
		EstimatedDays: row.EstimatedDays,
	}
}
