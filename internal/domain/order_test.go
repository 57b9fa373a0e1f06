package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusDelivered, false},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusRefunded, true},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
		{OrderStatusRefunded, OrderStatusPending, false},
		{OrderStatusRefunded, OrderStatusDelivered, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.allowed {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	terminal := map[OrderStatus]bool{
		OrderStatusPending:    false,
		OrderStatusProcessing: false,
		OrderStatusShipped:    false,
		OrderStatusDelivered:  false,
		OrderStatusCancelled:  true,
		OrderStatusRefunded:   true,
	}

	for status, want := range terminal {
		if got := status.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal() = %v, want %v", status, got, want)
		}
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	if !OrderStatusPending.IsValid() {
		t.Error("pending should be a valid status")
	}
	if OrderStatus("packed").IsValid() {
		t.Error("unknown status should not be valid")
	}
}

func TestItemTotal(t *testing.T) {
	tests := []struct {
		name        string
		unitPrice   string
		quantity    int32
		boxQuantity int32
		wholesale   bool
		expected    string
	}{
		{"retail multiplies by quantity", "10.00", 3, 12, false, "30.00"},
		{"wholesale multiplies by box quantity", "85.50", 3, 4, true, "342.00"},
		{"retail single unit", "7.25", 1, 0, false, "7.25"},
		{"wholesale single box", "19.99", 99, 1, true, "19.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := decimal.RequireFromString(tt.unitPrice)
			got := ItemTotal(price, tt.quantity, tt.boxQuantity, tt.wholesale)
			if !got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("ItemTotal() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestOrder_CanCancel(t *testing.T) {
	for status, want := range map[OrderStatus]bool{
		OrderStatusPending:    true,
		OrderStatusProcessing: true,
		OrderStatusShipped:    false,
		OrderStatusDelivered:  false,
		OrderStatusCancelled:  false,
		OrderStatusRefunded:   false,
	} {
		o := &Order{Status: status}
		if got := o.CanCancel(); got != want {
			t.Errorf("CanCancel with status %s = %v, want %v", status, got, want)
		}
	}
}

func TestOrder_CanRefund(t *testing.T) {
	statuses := []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded,
	}
	payments := []PaymentStatus{
		PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded,
	}

	// Refundable only when paid and at least shipped.
	for _, status := range statuses {
		for _, payment := range payments {
			o := &Order{Status: status, PaymentStatus: payment}
			want := payment == PaymentStatusPaid &&
				(status == OrderStatusShipped || status == OrderStatusDelivered)
			if got := o.CanRefund(); got != want {
				t.Errorf("CanRefund(status=%s, payment=%s) = %v, want %v", status, payment, got, want)
			}
		}
	}
}

func TestComputeStatistics(t *testing.T) {
	orders := []Order{
		{Kind: OrderKindRetail, Status: OrderStatusPending, Total: decimal.RequireFromString("30.00")},
		{Kind: OrderKindRetail, Status: OrderStatusDelivered, Total: decimal.RequireFromString("45.50")},
		{Kind: OrderKindWholesale, Status: OrderStatusDelivered, Total: decimal.RequireFromString("300.00")},
		{Kind: OrderKindRetail, Status: OrderStatusCancelled, Total: decimal.RequireFromString("12.00")},
	}

	stats := ComputeStatistics(orders)

	if stats.TotalOrders != 4 {
		t.Errorf("TotalOrders = %d, want 4", stats.TotalOrders)
	}
	if !stats.TotalRevenue.Equal(decimal.RequireFromString("387.50")) {
		t.Errorf("TotalRevenue = %s, want 387.50", stats.TotalRevenue)
	}
	if !stats.AverageOrderValue.Equal(decimal.RequireFromString("96.88")) {
		t.Errorf("AverageOrderValue = %s, want 96.88", stats.AverageOrderValue)
	}
	if stats.StatusCounts[OrderStatusDelivered] != 2 {
		t.Errorf("delivered count = %d, want 2", stats.StatusCounts[OrderStatusDelivered])
	}
	if stats.StatusCounts[OrderStatusPending] != 1 {
		t.Errorf("pending count = %d, want 1", stats.StatusCounts[OrderStatusPending])
	}
	if stats.RetailOrders != 3 {
		t.Errorf("RetailOrders = %d, want 3", stats.RetailOrders)
	}
	if !stats.RetailRevenue.Equal(decimal.RequireFromString("87.50")) {
		t.Errorf("RetailRevenue = %s, want 87.50", stats.RetailRevenue)
	}
	if stats.WholesaleOrders != 1 {
		t.Errorf("WholesaleOrders = %d, want 1", stats.WholesaleOrders)
	}
	if !stats.WholesaleRevenue.Equal(decimal.RequireFromString("300.00")) {
		t.Errorf("WholesaleRevenue = %s, want 300.00", stats.WholesaleRevenue)
	}
}

func TestComputeStatistics_Empty(t *testing.T) {
	stats := ComputeStatistics(nil)

	if stats.TotalOrders != 0 {
		t.Errorf("TotalOrders = %d, want 0", stats.TotalOrders)
	}
	if !stats.AverageOrderValue.IsZero() {
		t.Errorf("AverageOrderValue = %s, want 0 for empty set", stats.AverageOrderValue)
	}
	if !stats.TotalRevenue.IsZero() {
		t.Errorf("TotalRevenue = %s, want 0 for empty set", stats.TotalRevenue)
	}
}
