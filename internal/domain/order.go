package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfillment state of an order.
// The string values are part of the API contract and must not change.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// PaymentStatus represents the payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// OrderKind distinguishes per-unit retail orders from per-box wholesale orders.
// The kind is fixed at order creation and determines which price is snapshotted.
type OrderKind string

const (
	OrderKindRetail    OrderKind = "retail"
	OrderKindWholesale OrderKind = "wholesale"
)

// PaymentRecordStatus represents the state of an individual payment record.
type PaymentRecordStatus string

const (
	PaymentRecordPending   PaymentRecordStatus = "pending"
	PaymentRecordCompleted PaymentRecordStatus = "completed"
	PaymentRecordFailed    PaymentRecordStatus = "failed"
	PaymentRecordRefunded  PaymentRecordStatus = "refunded"
)

// validNextStatus is the order fulfillment state machine.
// Cancelled and refunded are terminal.
var validNextStatus = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:    {OrderStatusProcessing: true, OrderStatusCancelled: true},
	OrderStatusProcessing: {OrderStatusShipped: true, OrderStatusCancelled: true},
	OrderStatusShipped:    {OrderStatusDelivered: true},
	OrderStatusDelivered:  {OrderStatusRefunded: true},
	OrderStatusCancelled:  {},
	OrderStatusRefunded:   {},
}

// CanTransition reports whether an order may move from one status to another.
// A same-status "transition" is not covered here; callers treat it as a no-op.
func CanTransition(from, to OrderStatus) bool {
	return validNextStatus[from][to]
}

// IsTerminal reports whether a status permits no further transitions.
func (s OrderStatus) IsTerminal() bool {
	return len(validNextStatus[s]) == 0
}

// IsValid reports whether s is a known order status.
func (s OrderStatus) IsValid() bool {
	_, ok := validNextStatus[s]
	return ok
}

// Order is the ledger aggregate. Monetary fields are fixed-point decimals;
// Total = Subtotal + TaxAmount + ShippingCost always holds for persisted orders.
type Order struct {
	ID            uuid.UUID
	OrderNumber   string
	AccountID     uuid.UUID
	Kind          OrderKind
	Status        OrderStatus
	PaymentStatus PaymentStatus

	Subtotal     decimal.Decimal
	TaxAmount    decimal.Decimal
	ShippingCost decimal.Decimal
	Total        decimal.Decimal

	ShippingName       string
	ShippingAddress    string
	ShippingCity       string
	ShippingRegion     string
	ShippingPostalCode string
	ShippingCountry    string

	AdminNotes string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time

	Items    []OrderItem
	Payments []Payment
}

// CanCancel reports whether the order may still be cancelled.
func (o *Order) CanCancel() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
}

// CanRefund reports whether the order is eligible for a refund.
// Requires a paid order that has at least shipped.
func (o *Order) CanRefund() bool {
	if o.PaymentStatus != PaymentStatusPaid {
		return false
	}
	return o.Status == OrderStatusShipped || o.Status == OrderStatusDelivered
}

// OrderItem is a line on an order. UnitPrice is snapshotted from the product
// at creation time and never recomputed.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int32
	UnitPrice   decimal.Decimal
	Wholesale   bool
	BoxQuantity int32
	Total       decimal.Decimal
}

// ItemTotal computes a line total: wholesale lines price per box,
// retail lines price per unit.
func ItemTotal(unitPrice decimal.Decimal, quantity, boxQuantity int32, wholesale bool) decimal.Decimal {
	if wholesale {
		return unitPrice.Mul(decimal.NewFromInt32(boxQuantity))
	}
	return unitPrice.Mul(decimal.NewFromInt32(quantity))
}

// Payment records a single payment attempt against an order.
type Payment struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	Amount         decimal.Decimal
	Method         string
	TransactionRef string
	Status         PaymentRecordStatus
	CreatedAt      time.Time
}

// CartItem is a requested order line submitted by the caller.
// For wholesale orders Quantity is interpreted as a box count.
type CartItem struct {
	ProductID uuid.UUID
	Quantity  int32
}

// OrderStatusUpdate enumerates the fields a status update may mutate.
type OrderStatusUpdate struct {
	Status OrderStatus
	Note   string
}

// OrderStatistics is a pure aggregation over a set of orders.
type OrderStatistics struct {
	TotalOrders       int
	TotalRevenue      decimal.Decimal
	AverageOrderValue decimal.Decimal

	StatusCounts map[OrderStatus]int

	RetailOrders     int
	RetailRevenue    decimal.Decimal
	WholesaleOrders  int
	WholesaleRevenue decimal.Decimal
}

// ComputeStatistics aggregates orders without side effects.
// The average is zero for an empty input set.
func ComputeStatistics(orders []Order) OrderStatistics {
	stats := OrderStatistics{
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		RetailRevenue:     decimal.Zero,
		WholesaleRevenue:  decimal.Zero,
		StatusCounts:      make(map[OrderStatus]int),
	}

	for _, o := range orders {
		stats.TotalOrders++
		stats.TotalRevenue = stats.TotalRevenue.Add(o.Total)
		stats.StatusCounts[o.Status]++

		switch o.Kind {
		case OrderKindWholesale:
			stats.WholesaleOrders++
			stats.WholesaleRevenue = stats.WholesaleRevenue.Add(o.Total)
		default:
			stats.RetailOrders++
			stats.RetailRevenue = stats.RetailRevenue.Add(o.Total)
		}
	}

	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue.Div(decimal.NewFromInt(int64(stats.TotalOrders))).Round(2)
	}

	return stats
}

// Order-related domain errors.
var (
	ErrOrderNotFound          = &Error{Code: ENOTFOUND, Message: "Order not found"}
	ErrEmptyCart              = &Error{Code: EINVALID, Message: "Cart must contain at least one item"}
	ErrShippingMethodNotFound = &Error{Code: ENOTFOUND, Message: "Shipping method not found"}
)
