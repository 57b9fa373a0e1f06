package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/hazelbrook/saffron/internal/domain"
	"github.com/hazelbrook/saffron/internal/repository"
	"github.com/hazelbrook/saffron/internal/telemetry"
)

// AnalyticsService maintains sales rollups and inventory alerts.
type AnalyticsService interface {
	// RollupDay recomputes the sales rollup for one calendar day. Safe to run
	// repeatedly; the previous row for the day is overwritten.
	RollupDay(ctx context.Context, day time.Time) (*domain.DailySales, error)

	// SalesBetween returns daily rollups in [from, to].
	SalesBetween(ctx context.Context, from, to time.Time) ([]domain.DailySales, error)

	// SweepInventory opens alerts for low and out-of-stock products and
	// resolves alerts for products that have been restocked.
	SweepInventory(ctx context.Context) ([]domain.InventoryAlert, error)

	ListOpenAlerts(ctx context.Context) ([]domain.InventoryAlert, error)

	// Dashboard combines order statistics over a range with the current
	// inventory picture.
	Dashboard(ctx context.Context, from, to time.Time) (*domain.DashboardSummary, error)
}

type analyticsService struct {
	store   repository.Store
	metrics *telemetry.BusinessMetrics
	logger  *slog.Logger
}

// NewAnalyticsService creates a new AnalyticsService instance.
func NewAnalyticsService(store repository.Store, metrics *telemetry.BusinessMetrics, logger *slog.Logger) AnalyticsService {
	return &analyticsService{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *analyticsService) RollupDay(ctx context.Context, day time.Time) (*domain.DailySales, error) {
	const op = "analytics.rollup_day"

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	orders, err := s.store.ListOrdersBetween(ctx, repository.ListOrdersBetweenParams{
		From: pgTimestamptz(start),
		To:   pgTimestamptz(end),
	})
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list orders")
	}

	// Cancelled and refunded orders do not count towards the day's revenue.
	revenue := decimal.Zero
	ordersCount := int32(0)
	unitsSold := int32(0)
	for _, row := range orders {
		order := toDomainOrder(row)
		if order.Status == domain.OrderStatusCancelled || order.Status == domain.OrderStatusRefunded {
			continue
		}
		ordersCount++
		revenue = revenue.Add(order.Total)

		items, err := s.store.GetOrderItems(ctx, row.ID)
		if err != nil {
			return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to load order items")
		}
		for _, item := range items {
			unitsSold += item.Quantity
		}
	}

	newCustomers, err := s.store.CountAccountsCreatedBetween(ctx, repository.CountAccountsCreatedBetweenParams{
		From: pgTimestamptz(start),
		To:   pgTimestamptz(end),
	})
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to count new accounts")
	}

	revenueNum, err := decimalToNumeric(revenue)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to encode amount")
	}

	row, err := s.store.UpsertDailySales(ctx, repository.UpsertDailySalesParams{
		Date:         pgtype.Date{Time: start, Valid: true},
		OrdersCount:  ordersCount,
		Revenue:      revenueNum,
		UnitsSold:    unitsSold,
		NewCustomers: int32(newCustomers),
	})
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to save daily sales")
	}

	s.logger.Info("daily sales rolled up",
		"date", start.Format("2006-01-02"),
		"orders", ordersCount,
		"revenue", revenue,
	)

	sales := toDomainDailySales(row)
	return &sales, nil
}

func (s *analyticsService) SalesBetween(ctx context.Context, from, to time.Time) ([]domain.DailySales, error) {
	const op = "analytics.sales_between"

	rows, err := s.store.ListDailySalesBetween(ctx, repository.ListDailySalesBetweenParams{
		From: pgtype.Date{Time: from, Valid: true},
		To:   pgtype.Date{Time: to, Valid: true},
	})
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list daily sales")
	}

	sales := make([]domain.DailySales, len(rows))
	for i, row := range rows {
		sales[i] = toDomainDailySales(row)
	}
	return sales, nil
}

func (s *analyticsService) SweepInventory(ctx context.Context) ([]domain.InventoryAlert, error) {
	const op = "analytics.sweep_inventory"

	low, err := s.store.ListLowStockProducts(ctx, domain.LowStockThreshold)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list low stock products")
	}

	lowIDs := make(map[[16]byte]bool, len(low))
	var alerts []domain.InventoryAlert
	for _, product := range low {
		lowIDs[product.ID.Bytes] = true
		row, err := s.store.UpsertInventoryAlert(ctx, repository.UpsertInventoryAlertParams{
			ProductID: product.ID,
			Status:    string(domain.StockStatusFor(product.Stock)),
			Stock:     product.Stock,
		})
		if err != nil {
			return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to save inventory alert")
		}
		alerts = append(alerts, toDomainInventoryAlert(row))
	}

	// Close alerts for products that have since been restocked.
	open, err := s.store.ListOpenInventoryAlerts(ctx)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list inventory alerts")
	}
	for _, alert := range open {
		if lowIDs[alert.ProductID.Bytes] {
			continue
		}
		if err := s.store.ResolveInventoryAlerts(ctx, alert.ProductID); err != nil {
			return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to resolve inventory alerts")
		}
	}

	if s.metrics != nil {
		s.metrics.LowStockProducts.Set(float64(len(low)))
	}

	return alerts, nil
}

func (s *analyticsService) ListOpenAlerts(ctx context.Context) ([]domain.InventoryAlert, error) {
	const op = "analytics.list_open_alerts"

	rows, err := s.store.ListOpenInventoryAlerts(ctx)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list inventory alerts")
	}

	alerts := make([]domain.InventoryAlert, len(rows))
	for i, row := range rows {
		alerts[i] = toDomainInventoryAlert(row)
	}
	return alerts, nil
}

func (s *analyticsService) Dashboard(ctx context.Context, from, to time.Time) (*domain.DashboardSummary, error) {
	const op = "analytics.dashboard"

	rows, err := s.store.ListOrdersBetween(ctx, repository.ListOrdersBetweenParams{
		From: pgTimestamptz(from),
		To:   pgTimestamptz(to),
	})
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list orders")
	}

	orders := make([]domain.Order, len(rows))
	for i, row := range rows {
		orders[i] = toDomainOrder(row)
	}

	low, err := s.store.ListLowStockProducts(ctx, domain.LowStockThreshold)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list low stock products")
	}

	summary := &domain.DashboardSummary{
		From:  from,
		To:    to,
		Stats: domain.ComputeStatistics(orders),
	}
	for _, product := range low {
		if product.Stock == 0 {
			summary.OutOfStockCount++
		} else {
			summary.LowStockCount++
		}
	}

	return summary, nil
}
