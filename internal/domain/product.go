package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level below which a product is flagged
// as low stock. Dashboards and inventory alerts depend on this exact value.
const LowStockThreshold = 50

// StockStatus is a derived, read-only inventory state.
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// StockStatusFor derives the inventory state for a stock count.
func StockStatusFor(stock int32) StockStatus {
	switch {
	case stock == 0:
		return StockStatusOutOfStock
	case stock < LowStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// HeatLevel is the 1-5 spiciness scale shown on product pages.
type HeatLevel int32

// Product is a catalog entry. RetailPrice applies per unit; WholesalePrice
// applies per box of BoxQuantity units.
type Product struct {
	ID             uuid.UUID
	CategoryID     uuid.UUID
	Name           string
	Slug           string
	Description    string
	OriginCountry  string
	HeatLevel      HeatLevel
	RetailPrice    decimal.Decimal
	WholesalePrice decimal.Decimal
	BoxQuantity    int32
	Stock          int32
	Active         bool
	ImageURL       string
	RatingAverage  decimal.Decimal
	ReviewCount    int32
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StockStatus derives the product's current inventory state.
func (p *Product) StockStatus() StockStatus {
	return StockStatusFor(p.Stock)
}

// UnitPriceFor returns the price snapshot for an order of the given kind.
func (p *Product) UnitPriceFor(kind OrderKind) decimal.Decimal {
	if kind == OrderKindWholesale {
		return p.WholesalePrice
	}
	return p.RetailPrice
}

// ProductUpdate enumerates the mutable product fields. Nil pointers leave
// the corresponding field unchanged.
type ProductUpdate struct {
	Name           *string
	Description    *string
	OriginCountry  *string
	HeatLevel      *HeatLevel
	RetailPrice    *decimal.Decimal
	WholesalePrice *decimal.Decimal
	BoxQuantity    *int32
	Active         *bool
	ImageURL       *string
}

// Category groups products for browsing.
type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
}

// Review is a customer rating of a product, one per (product, account).
type Review struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	AccountID uuid.UUID
	Rating    int32
	Comment   string
	CreatedAt time.Time
}

// RollupRating folds a new rating into a running average.
func RollupRating(average decimal.Decimal, count int32, rating int32) (decimal.Decimal, int32) {
	total := average.Mul(decimal.NewFromInt32(count)).Add(decimal.NewFromInt32(rating))
	newCount := count + 1
	return total.Div(decimal.NewFromInt32(newCount)).Round(2), newCount
}

// Product-related domain errors.
var (
	ErrProductNotFound  = &Error{Code: ENOTFOUND, Message: "Product not found"}
	ErrCategoryNotFound = &Error{Code: ENOTFOUND, Message: "Category not found"}
	ErrProductInactive  = &Error{Code: EINVALID, Message: "Product is not available for purchase"}
	ErrDuplicateReview  = &Error{Code: ECONFLICT, Message: "Product already reviewed by this customer"}
)
