package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/hazelbrook/saffron/internal/domain"
	"github.com/hazelbrook/saffron/internal/repository"
)

// pgUUID wraps a uuid.UUID for query parameters.
func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func fromPgUUID(id pgtype.UUID) uuid.UUID {
	return uuid.UUID(id.Bytes)
}

// pgText converts a string to a nullable text parameter.
// Empty strings are stored as NULL.
func pgText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// pgTextPtr converts an optional patch field to a nullable text parameter.
// Nil means "leave unchanged" for coalesce-style updates.
func pgTextPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func fromPgText(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

func pgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func fromPgTimestamptz(t pgtype.Timestamptz) time.Time {
	return t.Time
}

func fromPgTimestamptzPtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	ts := t.Time
	return &ts
}

// decimalToNumeric converts a decimal amount to the pgtype representation.
// Numeric.Scan understands decimal string form, so round-tripping is exact.
func decimalToNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if err := n.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, err
	}
	return n, nil
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func toDomainOrder(row repository.Order) domain.Order {
	return domain.Order{
		ID:                 fromPgUUID(row.ID),
		OrderNumber:        row.OrderNumber,
		AccountID:          fromPgUUID(row.AccountID),
		Kind:               domain.OrderKind(row.Kind),
		Status:             domain.OrderStatus(row.Status),
		PaymentStatus:      domain.PaymentStatus(row.PaymentStatus),
		Subtotal:           numericToDecimal(row.Subtotal),
		TaxAmount:          numericToDecimal(row.TaxAmount),
		ShippingCost:       numericToDecimal(row.ShippingCost),
		Total:              numericToDecimal(row.Total),
		ShippingName:       fromPgText(row.ShippingName),
		ShippingAddress:    fromPgText(row.ShippingAddress),
		ShippingCity:       fromPgText(row.ShippingCity),
		ShippingRegion:     fromPgText(row.ShippingRegion),
		ShippingPostalCode: fromPgText(row.ShippingPostalCode),
		ShippingCountry:    fromPgText(row.ShippingCountry),
		AdminNotes:         fromPgText(row.AdminNotes),
		CreatedAt:          fromPgTimestamptz(row.CreatedAt),
		UpdatedAt:          fromPgTimestamptz(row.UpdatedAt),
		ShippedAt:          fromPgTimestamptzPtr(row.ShippedAt),
		DeliveredAt:        fromPgTimestamptzPtr(row.DeliveredAt),
	}
}

func toDomainOrderItem(row repository.OrderItem) domain.OrderItem {
	return domain.OrderItem{
		ID:          fromPgUUID(row.ID),
		OrderID:     fromPgUUID(row.OrderID),
		ProductID:   fromPgUUID(row.ProductID),
		ProductName: row.ProductName,
		Quantity:    row.Quantity,
		UnitPrice:   numericToDecimal(row.UnitPrice),
		Wholesale:   row.Wholesale,
		BoxQuantity: row.BoxQuantity,
		Total:       numericToDecimal(row.Total),
	}
}

func toDomainPayment(row repository.Payment) domain.Payment {
	return domain.Payment{
		ID:             fromPgUUID(row.ID),
		OrderID:        fromPgUUID(row.OrderID),
		Amount:         numericToDecimal(row.Amount),
		Method:         row.Method,
		TransactionRef: fromPgText(row.TransactionRef),
		Status:         domain.PaymentRecordStatus(row.Status),
		CreatedAt:      fromPgTimestamptz(row.CreatedAt),
	}
}

func toDomainProduct(row repository.Product) domain.Product {
	return domain.Product{
		ID:             fromPgUUID(row.ID),
		CategoryID:     fromPgUUID(row.CategoryID),
		Name:           row.Name,
		Slug:           row.Slug,
		Description:    fromPgText(row.Description),
		OriginCountry:  fromPgText(row.OriginCountry),
		HeatLevel:      domain.HeatLevel(row.HeatLevel),
		RetailPrice:    numericToDecimal(row.RetailPrice),
		WholesalePrice: numericToDecimal(row.WholesalePrice),
		BoxQuantity:    row.BoxQuantity,
		Stock:          row.Stock,
		Active:         row.Active,
		ImageURL:       fromPgText(row.ImageUrl),
		RatingAverage:  numericToDecimal(row.RatingAverage),
		ReviewCount:    row.ReviewCount,
		CreatedAt:      fromPgTimestamptz(row.CreatedAt),
		UpdatedAt:      fromPgTimestamptz(row.UpdatedAt),
	}
}

func toDomainCategory(row repository.Category) domain.Category {
	return domain.Category{
		ID:          fromPgUUID(row.ID),
		Name:        row.Name,
		Slug:        row.Slug,
		Description: fromPgText(row.Description),
		CreatedAt:   fromPgTimestamptz(row.CreatedAt),
	}
}

func toDomainReview(row repository.Review) domain.Review {
	return domain.Review{
		ID:        fromPgUUID(row.ID),
		ProductID: fromPgUUID(row.ProductID),
		AccountID: fromPgUUID(row.AccountID),
		Rating:    row.Rating,
		Comment:   fromPgText(row.Comment),
		CreatedAt: fromPgTimestamptz(row.CreatedAt),
	}
}

func toDomainAccount(row repository.Account) domain.Account {
	return domain.Account{
		ID:           fromPgUUID(row.ID),
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		FirstName:    fromPgText(row.FirstName),
		LastName:     fromPgText(row.LastName),
		IsStaff:      row.IsStaff,
		CreatedAt:    fromPgTimestamptz(row.CreatedAt),
	}
}

func toDomainProfile(row repository.Profile) domain.Profile {
	return domain.Profile{
		ID:                 fromPgUUID(row.ID),
		AccountID:          fromPgUUID(row.AccountID),
		Kind:               domain.CustomerKind(row.Kind),
		Phone:              fromPgText(row.Phone),
		CompanyName:        fromPgText(row.CompanyName),
		ShippingAddress:    fromPgText(row.ShippingAddress),
		ShippingCity:       fromPgText(row.ShippingCity),
		ShippingRegion:     fromPgText(row.ShippingRegion),
		ShippingPostalCode: fromPgText(row.ShippingPostalCode),
		ShippingCountry:    fromPgText(row.ShippingCountry),
		CreatedAt:          fromPgTimestamptz(row.CreatedAt),
		UpdatedAt:          fromPgTimestamptz(row.UpdatedAt),
	}
}

func toDomainApplication(row repository.DistributorApplication) domain.DistributorApplication {
	return domain.DistributorApplication{
		ID:          fromPgUUID(row.ID),
		AccountID:   fromPgUUID(row.AccountID),
		CompanyName: row.CompanyName,
		TaxID:       fromPgText(row.TaxID),
		Message:     fromPgText(row.Message),
		Status:      domain.ApplicationStatus(row.Status),
		ReviewNote:  fromPgText(row.ReviewNote),
		ReviewedAt:  fromPgTimestamptzPtr(row.ReviewedAt),
		CreatedAt:   fromPgTimestamptz(row.CreatedAt),
	}
}

func toDomainNotification(row repository.Notification) domain.Notification {
	return domain.Notification{
		ID:        fromPgUUID(row.ID),
		AccountID: fromPgUUID(row.AccountID),
		Kind:      domain.NotificationKind(row.Kind),
		Title:     row.Title,
		Body:      fromPgText(row.Body),
		Read:      row.Read,
		CreatedAt: fromPgTimestamptz(row.CreatedAt),
	}
}

func toDomainDailySales(row repository.DailySale) domain.DailySales {
	return domain.DailySales{
		Date:         row.Date.Time,
		OrdersCount:  row.OrdersCount,
		Revenue:      numericToDecimal(row.Revenue),
		UnitsSold:    row.UnitsSold,
		NewCustomers: row.NewCustomers,
	}
}

func toDomainInventoryAlert(row repository.InventoryAlert) domain.InventoryAlert {
	return domain.InventoryAlert{
		ID:        fromPgUUID(row.ID),
		ProductID: fromPgUUID(row.ProductID),
		Status:    domain.StockStatus(row.Status),
		Stock:     row.Stock,
		Resolved:  row.Resolved,
		CreatedAt: fromPgTimestamptz(row.CreatedAt),
	}
}
