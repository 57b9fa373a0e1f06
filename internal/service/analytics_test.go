package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/hazelbrook/saffron/internal/repository"
)

func newAnalyticsServiceForTest(store repository.Store) AnalyticsService {
	return NewAnalyticsService(store, nil, testLogger())
}

func TestRollupDay(t *testing.T) {
	deliveredID := uuid.New()
	cancelledID := uuid.New()

	var captured repository.UpsertDailySalesParams
	store := &mockStore{
		ListOrdersBetweenFunc: func(ctx context.Context, arg repository.ListOrdersBetweenParams) ([]repository.Order, error) {
			return []repository.Order{
				{ID: pgtype.UUID{Bytes: deliveredID, Valid: true}, Kind: "retail", Status: "delivered", Total: mustNumeric(t, "96.00")},
				{ID: pgtype.UUID{Bytes: cancelledID, Valid: true}, Kind: "retail", Status: "cancelled", Total: mustNumeric(t, "500.00")},
			}, nil
		},
		GetOrderItemsFunc: func(ctx context.Context, orderID pgtype.UUID) ([]repository.OrderItem, error) {
			if orderID.Bytes == cancelledID {
				t.Error("cancelled orders must not be tallied")
			}
			return []repository.OrderItem{{Quantity: 8}, {Quantity: 4}}, nil
		},
		CountAccountsCreatedBetweenFunc: func(ctx context.Context, arg repository.CountAccountsCreatedBetweenParams) (int64, error) {
			return 2, nil
		},
		UpsertDailySalesFunc: func(ctx context.Context, arg repository.UpsertDailySalesParams) (repository.DailySale, error) {
			captured = arg
			return repository.DailySale{
				Date:         arg.Date,
				OrdersCount:  arg.OrdersCount,
				Revenue:      arg.Revenue,
				UnitsSold:    arg.UnitsSold,
				NewCustomers: arg.NewCustomers,
			}, nil
		},
	}

	svc := newAnalyticsServiceForTest(store)
	sales, err := svc.RollupDay(context.Background(), time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("RollupDay() error = %v", err)
	}

	if captured.OrdersCount != 1 {
		t.Errorf("orders count = %d, want 1 (cancelled excluded)", captured.OrdersCount)
	}
	if got := numericToDecimal(captured.Revenue).StringFixed(2); got != "96.00" {
		t.Errorf("revenue = %s, want 96.00", got)
	}
	if captured.UnitsSold != 12 {
		t.Errorf("units sold = %d, want 12", captured.UnitsSold)
	}
	if captured.NewCustomers != 2 {
		t.Errorf("new customers = %d, want 2", captured.NewCustomers)
	}
	if !captured.Date.Time.Equal(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("rollup date should be truncated to midnight, got %v", captured.Date.Time)
	}
	if sales.OrdersCount != 1 {
		t.Errorf("returned orders count = %d, want 1", sales.OrdersCount)
	}
}

func TestSweepInventory(t *testing.T) {
	lowID := uuid.New()
	emptyID := uuid.New()
	recoveredID := uuid.New()

	upserted := map[[16]byte]string{}
	resolved := map[[16]byte]bool{}

	store := &mockStore{
		ListLowStockProductsFunc: func(ctx context.Context, threshold int32) ([]repository.Product, error) {
			return []repository.Product{
				{ID: pgtype.UUID{Bytes: lowID, Valid: true}, Name: "Long Pepper", Stock: 12},
				{ID: pgtype.UUID{Bytes: emptyID, Valid: true}, Name: "Grains of Paradise", Stock: 0},
			}, nil
		},
		UpsertInventoryAlertFunc: func(ctx context.Context, arg repository.UpsertInventoryAlertParams) (repository.InventoryAlert, error) {
			upserted[arg.ProductID.Bytes] = arg.Status
			return repository.InventoryAlert{
				ID:        pgtype.UUID{Bytes: uuid.New(), Valid: true},
				ProductID: arg.ProductID,
				Status:    arg.Status,
				Stock:     arg.Stock,
			}, nil
		},
		ListOpenInventoryAlertsFunc: func(ctx context.Context) ([]repository.InventoryAlert, error) {
			return []repository.InventoryAlert{
				{ProductID: pgtype.UUID{Bytes: lowID, Valid: true}, Status: "low_stock"},
				{ProductID: pgtype.UUID{Bytes: recoveredID, Valid: true}, Status: "low_stock"},
			}, nil
		},
		ResolveInventoryAlertsFunc: func(ctx context.Context, productID pgtype.UUID) error {
			resolved[productID.Bytes] = true
			return nil
		},
	}

	svc := newAnalyticsServiceForTest(store)
	alerts, err := svc.SweepInventory(context.Background())
	if err != nil {
		t.Fatalf("SweepInventory() error = %v", err)
	}

	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}
	if upserted[lowID] != "low_stock" {
		t.Errorf("product with stock 12 should alert low_stock, got %q", upserted[lowID])
	}
	if upserted[emptyID] != "out_of_stock" {
		t.Errorf("product with stock 0 should alert out_of_stock, got %q", upserted[emptyID])
	}
	if !resolved[recoveredID] {
		t.Error("restocked product's alert should be resolved")
	}
	if resolved[lowID] {
		t.Error("still-low product's alert must not be resolved")
	}
}

func TestDashboard(t *testing.T) {
	store := &mockStore{
		ListOrdersBetweenFunc: func(ctx context.Context, arg repository.ListOrdersBetweenParams) ([]repository.Order, error) {
			return []repository.Order{
				{Kind: "retail", Status: "delivered", Total: mustNumeric(t, "40.00")},
				{Kind: "wholesale", Status: "shipped", Total: mustNumeric(t, "360.00")},
			}, nil
		},
		ListLowStockProductsFunc: func(ctx context.Context, threshold int32) ([]repository.Product, error) {
			return []repository.Product{
				{ID: pgtype.UUID{Bytes: uuid.New(), Valid: true}, Stock: 3},
				{ID: pgtype.UUID{Bytes: uuid.New(), Valid: true}, Stock: 0},
				{ID: pgtype.UUID{Bytes: uuid.New(), Valid: true}, Stock: 49},
			}, nil
		},
	}

	svc := newAnalyticsServiceForTest(store)
	summary, err := svc.Dashboard(context.Background(), time.Now().AddDate(0, 0, -7), time.Now())
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}

	if summary.Stats.TotalOrders != 2 {
		t.Errorf("total orders = %d, want 2", summary.Stats.TotalOrders)
	}
	if got := summary.Stats.TotalRevenue.StringFixed(2); got != "400.00" {
		t.Errorf("total revenue = %s, want 400.00", got)
	}
	if summary.LowStockCount != 2 {
		t.Errorf("low stock count = %d, want 2", summary.LowStockCount)
	}
	if summary.OutOfStockCount != 1 {
		t.Errorf("out of stock count = %d, want 1", summary.OutOfStockCount)
	}
}
