package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailySales is a per-day rollup of order activity. Rollups are recomputed
// idempotently, so re-running a day overwrites the previous row.
type DailySales struct {
	Date         time.Time
	OrdersCount  int32
	Revenue      decimal.Decimal
	UnitsSold    int32
	NewCustomers int32
}

// InventoryAlert flags a product in a low or out-of-stock state.
type InventoryAlert struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Status    StockStatus
	Stock     int32
	Resolved  bool
	CreatedAt time.Time
}

// DashboardSummary combines order statistics over a range with the current
// inventory picture.
type DashboardSummary struct {
	From  time.Time
	To    time.Time
	Stats OrderStatistics

	LowStockCount   int
	OutOfStockCount int
}
