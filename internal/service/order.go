package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/hazelbrook/saffron/internal/domain"
	"github.com/hazelbrook/saffron/internal/email"
	"github.com/hazelbrook/saffron/internal/repository"
	"github.com/hazelbrook/saffron/internal/shipping"
	"github.com/hazelbrook/saffron/internal/telemetry"
)

// OrderService provides business logic for order operations
type OrderService interface {
	// CreateOrder validates the cart, snapshots prices, decrements stock and
	// persists the order with its items in a single transaction.
	CreateOrder(ctx context.Context, params CreateOrderParams) (*domain.Order, error)

	// GetOrder retrieves a single order by ID with items and payments.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)

	// GetOrderByNumber retrieves a single order by its public order number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)

	// ListOrders returns a page of orders, newest first.
	ListOrders(ctx context.Context, limit, offset int32) ([]domain.Order, error)

	// ListOrdersByAccount returns all orders for one customer, newest first.
	ListOrdersByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Order, error)

	// UpdateStatus moves an order through the fulfillment state machine.
	// Updating to the current status is a no-op and returns the order unchanged.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, update domain.OrderStatusUpdate) (*domain.Order, error)

	// RecordPayment appends a payment record to an order. A completed payment
	// marks the order as paid; a failed one marks it failed.
	RecordPayment(ctx context.Context, params RecordPaymentParams) (*domain.Payment, error)

	// Statistics aggregates orders created in [from, to).
	Statistics(ctx context.Context, from, to time.Time) (*domain.OrderStatistics, error)
}

// CreateOrderParams carries everything needed to place an order.
// For wholesale orders item quantities are box counts.
type CreateOrderParams struct {
	AccountID        uuid.UUID
	Kind             domain.OrderKind
	Items            []domain.CartItem
	ShippingMethodID uuid.UUID

	ShippingName       string
	ShippingAddress    string
	ShippingCity       string
	ShippingRegion     string
	ShippingPostalCode string
	ShippingCountry    string
}

// RecordPaymentParams describes a payment attempt against an order.
type RecordPaymentParams struct {
	OrderID        uuid.UUID
	Amount         decimal.Decimal
	Method         string
	TransactionRef string
	Status         domain.PaymentRecordStatus
}

type orderService struct {
	store    repository.Store
	shipping shipping.Provider
	notifier *email.Notifier
	metrics  *telemetry.BusinessMetrics
	logger   *slog.Logger
	taxRate  decimal.Decimal
}

// NewOrderService creates a new OrderService instance.
// notifier and metrics may be nil; notifications are then skipped.
func NewOrderService(store repository.Store, shippingProvider shipping.Provider, notifier *email.Notifier, metrics *telemetry.BusinessMetrics, logger *slog.Logger, taxRate decimal.Decimal) OrderService {
	return &orderService{
		store:    store,
		shipping: shippingProvider,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		taxRate:  taxRate,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, params CreateOrderParams) (*domain.Order, error) {
	const op = "order.create"

	if len(params.Items) == 0 {
		return nil, domain.Errorf(domain.EINVALID, op, "Order must contain at least one item")
	}
	seen := make(map[uuid.UUID]bool, len(params.Items))
	for _, item := range params.Items {
		if item.Quantity <= 0 {
			return nil, domain.Errorf(domain.EINVALID, op, "Quantity must be greater than 0")
		}
		if seen[item.ProductID] {
			return nil, domain.Errorf(domain.EINVALID, op, "Product %s appears more than once in the cart", item.ProductID)
		}
		seen[item.ProductID] = true
	}
	if params.Kind != domain.OrderKindRetail && params.Kind != domain.OrderKindWholesale {
		return nil, domain.Errorf(domain.EINVALID, op, "Unknown order kind %q", params.Kind)
	}

	shippingCost := decimal.Zero
	if params.ShippingMethodID != uuid.Nil {
		method, err := s.shipping.GetMethod(ctx, params.ShippingMethodID)
		if err != nil {
			var shipErr *shipping.ShippingError
			if errors.As(err, &shipErr) && shipErr.Code == "not_found" {
				return nil, ErrShippingMethodNotFound
			}
			return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to load shipping method")
		}
		shippingCost = method.Price
	}

	var created *domain.Order

	err := s.store.ExecTx(ctx, func(q repository.Querier) error {
		subtotal := decimal.Zero
		lines := make([]repository.CreateOrderItemParams, 0, len(params.Items))

		for _, item := range params.Items {
			product, err := q.GetProduct(ctx, pgUUID(item.ProductID))
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domain.Errorf(domain.ENOTFOUND, op, "Product %s not found", item.ProductID)
				}
				return domain.WrapError(err, domain.EINTERNAL, op, "failed to load product")
			}
			if !product.Active {
				return domain.Errorf(domain.EINVALID, op, "Product %q is not available for purchase", product.Name)
			}

			// Wholesale quantities are box counts; stock is tracked in units.
			wholesale := params.Kind == domain.OrderKindWholesale
			units := item.Quantity
			boxes := int32(0)
			if wholesale {
				boxes = item.Quantity
				units = boxes * product.BoxQuantity
			}

			if product.Stock < units {
				if s.metrics != nil {
					s.metrics.StockRejections.Inc()
				}
				return domain.Errorf(domain.EINVALID, op, "Insufficient stock for %q: %d requested, %d available", product.Name, units, product.Stock)
			}

			// Conditional decrement guards against concurrent checkouts that
			// passed the read check above.
			affected, err := q.DecrementProductStock(ctx, repository.DecrementProductStockParams{
				ID:       product.ID,
				Quantity: units,
			})
			if err != nil {
				return domain.WrapError(err, domain.EINTERNAL, op, "failed to update stock")
			}
			if affected == 0 {
				if s.metrics != nil {
					s.metrics.StockRejections.Inc()
				}
				return domain.Errorf(domain.EINVALID, op, "Insufficient stock for %q: %d requested, %d available", product.Name, units, product.Stock)
			}

			unitPrice := numericToDecimal(product.RetailPrice)
			if wholesale {
				unitPrice = numericToDecimal(product.WholesalePrice)
			}
			lineTotal := domain.ItemTotal(unitPrice, units, boxes, wholesale)
			subtotal = subtotal.Add(lineTotal)

			unitPriceNum, err := decimalToNumeric(unitPrice)
			if err != nil {
				return domain.WrapError(err, domain.EINTERNAL, op, "failed to encode amount")
			}
			lineTotalNum, err := decimalToNumeric(lineTotal)
			if err != nil {
				return domain.WrapError(err, domain.EINTERNAL, op, "failed to encode amount")
			}

			lines = append(lines, repository.CreateOrderItemParams{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    units,
				UnitPrice:   unitPriceNum,
				Wholesale:   wholesale,
				BoxQuantity: boxes,
				Total:       lineTotalNum,
			})
		}

		taxAmount := subtotal.Mul(s.taxRate).Round(2)
		total := subtotal.Add(taxAmount).Add(shippingCost)

		subtotalNum, err := decimalToNumeric(subtotal)
		if err != nil {
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to encode amount")
		}
		taxNum, err := decimalToNumeric(taxAmount)
		if err != nil {
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to encode amount")
		}
		shippingNum, err := decimalToNumeric(shippingCost)
		if err != nil {
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to encode amount")
		}
		totalNum, err := decimalToNumeric(total)
		if err != nil {
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to encode amount")
		}

		orderParams := repository.CreateOrderParams{
			OrderNumber:        generateOrderNumber(time.Now()),
			AccountID:          pgUUID(params.AccountID),
			Kind:               string(params.Kind),
			Subtotal:           subtotalNum,
			TaxAmount:          taxNum,
			ShippingCost:       shippingNum,
			Total:              totalNum,
			ShippingName:       pgText(params.ShippingName),
			ShippingAddress:    pgText(params.ShippingAddress),
			ShippingCity:       pgText(params.ShippingCity),
			ShippingRegion:     pgText(params.ShippingRegion),
			ShippingPostalCode: pgText(params.ShippingPostalCode),
			ShippingCountry:    pgText(params.ShippingCountry),
		}

		orderRow, err := q.CreateOrder(ctx, orderParams)
		if err != nil {
			// Random suffixes make collisions rare; retry once on a duplicate
			// order number before giving up.
			if isUniqueViolation(err) {
				orderParams.OrderNumber = generateOrderNumber(time.Now())
				orderRow, err = q.CreateOrder(ctx, orderParams)
			}
			if err != nil {
				return domain.WrapError(err, domain.EINTERNAL, op, "failed to save order")
			}
		}

		order := toDomainOrder(orderRow)
		for _, line := range lines {
			line.OrderID = orderRow.ID
			itemRow, err := q.CreateOrderItem(ctx, line)
			if err != nil {
				return domain.WrapError(err, domain.EINTERNAL, op, "failed to save order items")
			}
			order.Items = append(order.Items, toDomainOrderItem(itemRow))
		}

		created = &order
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		total, _ := created.Total.Float64()
		s.metrics.OrdersCreated.WithLabelValues(string(created.Kind)).Inc()
		s.metrics.OrderValue.WithLabelValues(string(created.Kind)).Observe(total)
		s.metrics.OrderItemCount.WithLabelValues(string(created.Kind)).Observe(float64(len(created.Items)))
	}

	s.logger.Info("order created",
		"order_id", created.ID,
		"order_number", created.OrderNumber,
		"kind", created.Kind,
		"total", created.Total,
	)

	return created, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	const op = "order.get"

	row, err := s.store.GetOrder(ctx, pgUUID(orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to load order")
	}
	return s.loadOrderDetail(ctx, op, row)
}

func (s *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	const op = "order.get_by_number"

	row, err := s.store.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to load order")
	}
	return s.loadOrderDetail(ctx, op, row)
}

func (s *orderService) loadOrderDetail(ctx context.Context, op string, row repository.Order) (*domain.Order, error) {
	order := toDomainOrder(row)

	items, err := s.store.GetOrderItems(ctx, row.ID)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to load order items")
	}
	for _, item := range items {
		order.Items = append(order.Items, toDomainOrderItem(item))
	}

	payments, err := s.store.GetOrderPayments(ctx, row.ID)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list payments")
	}
	for _, p := range payments {
		order.Payments = append(order.Payments, toDomainPayment(p))
	}

	return &order, nil
}

func (s *orderService) ListOrders(ctx context.Context, limit, offset int32) ([]domain.Order, error) {
	const op = "order.list"

	if limit <= 0 {
		limit = 50
	}
	rows, err := s.store.ListOrders(ctx, repository.ListOrdersParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list orders")
	}

	orders := make([]domain.Order, len(rows))
	for i, row := range rows {
		orders[i] = toDomainOrder(row)
	}
	return orders, nil
}

func (s *orderService) ListOrdersByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Order, error) {
	const op = "order.list_by_account"

	rows, err := s.store.ListOrdersByAccount(ctx, pgUUID(accountID))
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to list orders")
	}

	orders := make([]domain.Order, len(rows))
	for i, row := range rows {
		orders[i] = toDomainOrder(row)
	}
	return orders, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, update domain.OrderStatusUpdate) (*domain.Order, error) {
	const op = "order.update_status"

	if !update.Status.IsValid() {
		return nil, domain.Errorf(domain.EINVALID, op, "Unknown order status %q", update.Status)
	}

	var updated *domain.Order
	var previous domain.OrderStatus

	err := s.store.ExecTx(ctx, func(q repository.Querier) error {
		row, err := q.GetOrder(ctx, pgUUID(orderID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrOrderNotFound
			}
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to load order")
		}

		current := toDomainOrder(row)
		previous = current.Status

		// Re-applying the current status is an idempotent no-op. Timestamps
		// and notes are left untouched.
		if update.Status == current.Status {
			updated = &current
			return nil
		}

		if !domain.CanTransition(current.Status, update.Status) {
			return domain.Errorf(domain.ECONFLICT, op, "Cannot transition order %s from %s to %s", current.OrderNumber, current.Status, update.Status)
		}

		adminNotes := current.AdminNotes
		if update.Note != "" {
			if adminNotes != "" {
				adminNotes = adminNotes + "\n" + update.Note
			} else {
				adminNotes = update.Note
			}
		}

		shippedAt := row.ShippedAt
		deliveredAt := row.DeliveredAt
		now := time.Now()
		if update.Status == domain.OrderStatusShipped && !shippedAt.Valid {
			shippedAt = pgTimestamptz(now)
		}
		if update.Status == domain.OrderStatusDelivered && !deliveredAt.Valid {
			deliveredAt = pgTimestamptz(now)
		}

		newRow, err := q.UpdateOrderStatus(ctx, repository.UpdateOrderStatusParams{
			ID:          row.ID,
			Status:      string(update.Status),
			AdminNotes:  pgText(adminNotes),
			ShippedAt:   shippedAt,
			DeliveredAt: deliveredAt,
		})
		if err != nil {
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to update order")
		}

		// Cancelled orders return their reserved stock.
		if update.Status == domain.OrderStatusCancelled {
			items, err := q.GetOrderItems(ctx, row.ID)
			if err != nil {
				return domain.WrapError(err, domain.EINTERNAL, op, "failed to load order items")
			}
			for _, item := range items {
				err := q.IncrementProductStock(ctx, repository.IncrementProductStockParams{
					ID:       item.ProductID,
					Quantity: item.Quantity,
				})
				if err != nil {
					return domain.WrapError(err, domain.EINTERNAL, op, "failed to update stock")
				}
			}
		}

		if update.Status == domain.OrderStatusRefunded {
			err := q.UpdateOrderPaymentStatus(ctx, repository.UpdateOrderPaymentStatusParams{
				ID:            row.ID,
				PaymentStatus: string(domain.PaymentStatusRefunded),
			})
			if err != nil {
				return domain.WrapError(err, domain.EINTERNAL, op, "failed to update payment status")
			}
			newRow.PaymentStatus = string(domain.PaymentStatusRefunded)
		}

		order := toDomainOrder(newRow)
		updated = &order
		return nil
	})
	if err != nil {
		return nil, err
	}

	if previous != updated.Status {
		if s.metrics != nil {
			s.metrics.OrderStatusChanges.WithLabelValues(string(previous), string(updated.Status)).Inc()
		}
		s.notifyStatusChange(ctx, updated)
	}

	return updated, nil
}

// notifyStatusChange records an in-app notification and sends a best-effort
// email. Failures are logged, never surfaced to the caller.
func (s *orderService) notifyStatusChange(ctx context.Context, order *domain.Order) {
	title := fmt.Sprintf("Order %s %s", order.OrderNumber, order.Status)
	_, err := s.store.CreateNotification(ctx, repository.CreateNotificationParams{
		AccountID: pgUUID(order.AccountID),
		Kind:      string(domain.NotificationOrderUpdate),
		Title:     title,
		Body:      pgText(fmt.Sprintf("Your order %s is now %s.", order.OrderNumber, order.Status)),
	})
	if err != nil {
		s.logger.Error("failed to create order notification", "order_id", order.ID, "error", err)
	}

	if s.notifier == nil {
		return
	}

	account, err := s.store.GetAccountByID(ctx, pgUUID(order.AccountID))
	if err != nil {
		s.logger.Error("failed to load account for order email", "order_id", order.ID, "error", err)
		return
	}
	acct := toDomainAccount(account)

	err = s.notifier.SendOrderStatus(ctx, email.OrderStatusEmail{
		Email:       acct.Email,
		Name:        acct.FullName(),
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
		Total:       order.Total.StringFixed(2),
	})
	if err != nil {
		if s.metrics != nil {
			s.metrics.EmailFailed.WithLabelValues("order_status").Inc()
		}
		s.logger.Error("failed to send order status email", "order_id", order.ID, "error", err)
		return
	}
	if s.metrics != nil {
		s.metrics.EmailSent.WithLabelValues("order_status").Inc()
	}
}

func (s *orderService) RecordPayment(ctx context.Context, params RecordPaymentParams) (*domain.Payment, error) {
	const op = "order.record_payment"

	amountNum, err := decimalToNumeric(params.Amount)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to encode amount")
	}

	var payment *domain.Payment

	err = s.store.ExecTx(ctx, func(q repository.Querier) error {
		orderRow, err := q.GetOrder(ctx, pgUUID(params.OrderID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrOrderNotFound
			}
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to load order")
		}

		row, err := q.CreatePayment(ctx, repository.CreatePaymentParams{
			OrderID:        orderRow.ID,
			Amount:         amountNum,
			Method:         params.Method,
			TransactionRef: pgText(params.TransactionRef),
			Status:         string(params.Status),
		})
		if err != nil {
			return domain.WrapError(err, domain.EINTERNAL, op, "failed to save payment")
		}

		var paymentStatus domain.PaymentStatus
		switch params.Status {
		case domain.PaymentRecordCompleted:
			paymentStatus = domain.PaymentStatusPaid
		case domain.PaymentRecordFailed:
			paymentStatus = domain.PaymentStatusFailed
		}
		if paymentStatus != "" {
			err := q.UpdateOrderPaymentStatus(ctx, repository.UpdateOrderPaymentStatusParams{
				ID:            orderRow.ID,
				PaymentStatus: string(paymentStatus),
			})
			if err != nil {
				return domain.WrapError(err, domain.EINTERNAL, op, "failed to update payment status")
			}
		}

		p := toDomainPayment(row)
		payment = &p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.PaymentsRecorded.WithLabelValues(string(payment.Status)).Inc()
	}

	return payment, nil
}

func (s *orderService) Statistics(ctx context.Context, from, to time.Time) (*domain.OrderStatistics, error) {
	const op = "order.statistics"

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

	stats := domain.ComputeStatistics(orders)
	return &stats, nil
}

// generateOrderNumber builds an ORD-YYYYMMDD-XXXXXX order number with a
// random hex suffix.
func generateOrderNumber(now time.Time) string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// Nanosecond suffix; collisions are caught by the unique
		// constraint and retried.
		return fmt.Sprintf("ORD-%s-%06X", now.Format("20060102"), now.UnixNano()&0xFFFFFF)
	}
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), strings.ToUpper(hex.EncodeToString(buf)))
}

// isUniqueViolation reports whether err is a Postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
