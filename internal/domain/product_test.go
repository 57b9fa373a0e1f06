package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestStockStatusFor(t *testing.T) {
	tests := []struct {
		stock    int32
		expected StockStatus
	}{
		{0, StockStatusOutOfStock},
		{1, StockStatusLowStock},
		{49, StockStatusLowStock},
		{50, StockStatusInStock},
		{500, StockStatusInStock},
	}

	for _, tt := range tests {
		if got := StockStatusFor(tt.stock); got != tt.expected {
			t.Errorf("StockStatusFor(%d) = %s, want %s", tt.stock, got, tt.expected)
		}
	}
}

func TestProduct_UnitPriceFor(t *testing.T) {
	p := &Product{
		RetailPrice:    decimal.RequireFromString("12.50"),
		WholesalePrice: decimal.RequireFromString("95.00"),
	}

	if got := p.UnitPriceFor(OrderKindRetail); !got.Equal(p.RetailPrice) {
		t.Errorf("retail price = %s, want %s", got, p.RetailPrice)
	}
	if got := p.UnitPriceFor(OrderKindWholesale); !got.Equal(p.WholesalePrice) {
		t.Errorf("wholesale price = %s, want %s", got, p.WholesalePrice)
	}
}

func TestRollupRating(t *testing.T) {
	tests := []struct {
		name      string
		average   string
		count     int32
		rating    int32
		wantAvg   string
		wantCount int32
	}{
		{"first review", "0", 0, 4, "4.00", 1},
		{"second review", "4.00", 1, 2, "3.00", 2},
		{"rounds to two places", "4.00", 2, 5, "4.33", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, count := RollupRating(decimal.RequireFromString(tt.average), tt.count, tt.rating)
			if !avg.Equal(decimal.RequireFromString(tt.wantAvg)) {
				t.Errorf("average = %s, want %s", avg, tt.wantAvg)
			}
			if count != tt.wantCount {
				t.Errorf("count = %d, want %d", count, tt.wantCount)
			}
		})
	}
}
